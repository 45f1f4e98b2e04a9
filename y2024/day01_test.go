package main

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var day01Sample = []string{
	"3   4",
	"4   3",
	"2   5",
	"1   3",
	"3   9",
	"3   3",
}

func TestReconcile(t *testing.T) {
	got, err := Reconcile(day01Sample)
	require.NoError(t, err)
	require.Equal(t, 11, got)
}

func TestReconcileEmptyInput(t *testing.T) {
	got, err := Reconcile(nil)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestReconcileSinglePair(t *testing.T) {
	got, err := Reconcile([]string{"5 5"})
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestReconcileMalformedLines(t *testing.T) {
	lines := []string{
		"1 3",
		"abc def", // dropped, not fatal
		"1 2 3",   // three numbers, dropped
		"",        // blank, skipped silently
		"2 7",
	}
	pairs, err := parsePairs(lines)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// left [1,2], right [3,7]: |1-3| + |2-7| = 7.
	got, err := Reconcile(lines)
	require.NoError(t, err)
	require.Equal(t, 7, got)
}

func TestSimilarityScore(t *testing.T) {
	got, err := SimilarityScore(day01Sample)
	require.NoError(t, err)
	require.Equal(t, 31, got)
}

// Both columns get sorted, so the answer can't depend on the order
// the lines arrive in.
func TestReconcilePermutationInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOf(rapid.Custom(func(t *rapid.T) string {
			return fmt.Sprintf("%d %d",
				rapid.IntRange(0, 99999).Draw(t, "left"),
				rapid.IntRange(0, 99999).Draw(t, "right"))
		})).Draw(t, "lines")

		want, err := Reconcile(lines)
		require.NoError(t, err)

		again, err := Reconcile(lines)
		require.NoError(t, err)
		require.Equal(t, want, again, "same input must give same answer")

		shuffled := append([]string(nil), lines...)
		seed := rapid.Int64().Draw(t, "seed")
		rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got, err := Reconcile(shuffled)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
}

// When every line pairs a value with itself the sorted columns are
// identical and every positional difference is zero.
func TestReconcileIdenticalColumns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.IntRange(0, 99999)).Draw(t, "values")
		lines := make([]string, len(values))
		for i, v := range values {
			lines[i] = fmt.Sprintf("%d %d", v, v)
		}
		got, err := Reconcile(lines)
		require.NoError(t, err)
		require.Equal(t, 0, got)
	})
}
