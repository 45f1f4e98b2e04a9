package aoc

import (
	"log"
	"strconv"
	"strings"
)

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Fields splits s around runs of whitespace.
func Fields(s string) []string {
	return strings.Fields(s)
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Unzip splits a slice of pairs into its two columns, preserving
// order.
func Unzip[T any](pairs [][2]T) (a, b []T) {
	a = make([]T, 0, len(pairs))
	b = make([]T, 0, len(pairs))
	for _, p := range pairs {
		a = append(a, p[0])
		b = append(b, p[1])
	}
	return a, b
}

// CountValues returns how often each value appears in xs.
func CountValues[T comparable](xs []T) map[T]int {
	counts := make(map[T]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	return counts
}

// Blocks splits lines into groups separated by blank lines.
func Blocks(lines []string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
