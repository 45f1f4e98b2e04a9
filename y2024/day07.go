package main

import (
	"fmt"
	"strings"

	aoc "github.com/jmhart/aoc2024"
)

// Day 7: bridge repair calibration equations.

// canCalibrate reports whether the operands can be combined
// left-to-right with + and * (and concatenation, if allowed) to
// produce target. Every operator only grows the accumulator, so
// branches past the target are pruned.
func canCalibrate(target, acc int, operands []int, concat bool) bool {
	if acc > target {
		return false
	}
	if len(operands) == 0 {
		return acc == target
	}
	next, rest := operands[0], operands[1:]
	if canCalibrate(target, acc+next, rest, concat) {
		return true
	}
	if canCalibrate(target, acc*next, rest, concat) {
		return true
	}
	if concat {
		joined := acc*aoc.Pow10(aoc.NumDigits(next)) + next
		if canCalibrate(target, joined, rest, concat) {
			return true
		}
	}
	return false
}

// CalibrationSum sums the test values of the equations that can be
// made true.
func CalibrationSum(lines []string, concat bool) (int, error) {
	total := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		target, rest, ok := strings.Cut(line, ":")
		if !ok {
			return 0, fmt.Errorf("bad equation line %q", line)
		}
		operands := aoc.Ints(aoc.Fields(rest)...)
		if canCalibrate(aoc.Int(target), operands[0], operands[1:], concat) {
			total += aoc.Int(target)
		}
	}
	return total, nil
}

/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
*/
func (s solver) D7p1() any {
	return aoc.MustGet(CalibrationSum(s.Lines(), false))
}

// want=11387
func (s solver) D7p2() any {
	return aoc.MustGet(CalibrationSum(s.Lines(), true))
}
