package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanMuls(t *testing.T) {
	const memory = "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))"
	require.Equal(t, 161, ScanMuls(memory, false))
}

func TestScanMulsGated(t *testing.T) {
	const memory = "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))"
	require.Equal(t, 48, ScanMuls(memory, true))
	// Ungated, the don't() is ignored.
	require.Equal(t, 161, ScanMuls(memory, false))
}

func TestScanMulsRejectsWideOperands(t *testing.T) {
	// Operands are at most three digits.
	require.Equal(t, 0, ScanMuls("mul(1234,5)", false))
}
