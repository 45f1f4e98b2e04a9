package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoneCount(t *testing.T) {
	require.Equal(t, 22, StoneCount("125 17", 6))
	require.Equal(t, 55312, StoneCount("125 17", 25))
}

func TestBlink(t *testing.T) {
	tests := []struct {
		stone int
		want  []int
	}{
		{0, []int{1}},
		{1, []int{2024}},
		{10, []int{1, 0}},
		{99, []int{9, 9}},
		{999, []int{2021976}},
		{1000, []int{10, 0}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, blink(tt.stone), "stone %d", tt.stone)
	}
}
