package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	aoc "github.com/jmhart/aoc2024"
)

var day08Sample = []string{
	"............",
	"........0...",
	".....0......",
	".......0....",
	"....0.......",
	"......A.....",
	"............",
	"............",
	"........A...",
	".........A..",
	"............",
	"............",
}

func TestAntinodes(t *testing.T) {
	require.Equal(t, 14, Antinodes(aoc.ParseGrid(day08Sample), false))
}

func TestAntinodesResonant(t *testing.T) {
	require.Equal(t, 34, Antinodes(aoc.ParseGrid(day08Sample), true))
}

func TestAntinodesSinglePair(t *testing.T) {
	g := aoc.ParseGrid([]string{
		"..........",
		"..........",
		"..........",
		"....a.....",
		"..........",
		".....a....",
		"..........",
		"..........",
		"..........",
		"..........",
	})
	// One antinode beyond each antenna: (3,1) and (6,7).
	require.Equal(t, 2, Antinodes(g, false))
}
