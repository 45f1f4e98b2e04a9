package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	aoc "github.com/jmhart/aoc2024"
)

var day06Sample = []string{
	"....#.....",
	".........#",
	"..........",
	"..#.......",
	".......#..",
	"..........",
	".#..^.....",
	"........#.",
	"#.........",
	"......#...",
}

func TestGuardedCells(t *testing.T) {
	require.Equal(t, 41, GuardedCells(aoc.ParseGrid(day06Sample)))
}

func TestLoopObstructions(t *testing.T) {
	require.Equal(t, 6, LoopObstructions(aoc.ParseGrid(day06Sample)))
}

func TestPatrolLoopDetection(t *testing.T) {
	// A box the guard can never leave.
	g := aoc.ParseGrid([]string{
		".#..",
		"...#",
		"#^..",
		"..#.",
	})
	_, looped := patrol(g, guardStart(g), noObstruction)
	require.True(t, looped)
}
