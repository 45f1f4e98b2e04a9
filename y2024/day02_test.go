package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var day02Sample = []string{
	"7 6 4 2 1",
	"1 2 7 8 9",
	"9 7 6 2 1",
	"1 3 2 4 5",
	"8 6 4 4 1",
	"1 3 6 7 9",
}

func TestSafeReports(t *testing.T) {
	require.Equal(t, 2, SafeReports(day02Sample, false))
}

func TestSafeReportsDampened(t *testing.T) {
	require.Equal(t, 4, SafeReports(day02Sample, true))
}

func TestReportSafe(t *testing.T) {
	tests := []struct {
		levels []int
		want   bool
	}{
		{[]int{7, 6, 4, 2, 1}, true},
		{[]int{1, 3, 6, 7, 9}, true},
		{[]int{1, 2, 7, 8, 9}, false}, // jump of 5
		{[]int{8, 6, 4, 4, 1}, false}, // flat step
		{[]int{1, 3, 2, 4, 5}, false}, // direction change
		{[]int{5}, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, reportSafe(tt.levels), "levels %v", tt.levels)
	}
}
