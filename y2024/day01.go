package main

import (
	"fmt"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/jmhart/aoc2024"
)

// Day 1: reconcile the two location ID lists.

var pairRx = regexp.MustCompile(`^(\d+)\s+(\d+)$`)

// parsePairs extracts one (left, right) pair of non-negative integers
// per line. Blank lines are skipped; non-blank lines that don't match
// the two-number shape are logged and dropped, not fatal. A capture
// that fails to parse as an integer is a hard error: the pattern only
// admits digits, so it means the parsing logic itself is broken.
func parsePairs(lines []string) ([][2]int, error) {
	var pairs [][2]int
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := pairRx.FindStringSubmatch(line)
		if m == nil {
			log.Printf("day 1: skipping malformed line %q", line)
			continue
		}
		left, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("parsing left capture %q: %w", m[1], err)
		}
		right, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("parsing right capture %q: %w", m[2], err)
		}
		pairs = append(pairs, [2]int{left, right})
	}
	return pairs, nil
}

// Reconcile sorts both columns ascending, pairs them up positionally
// and sums the absolute differences. The two columns always have the
// same length: each matched line contributes to both, so there is no
// truncation case to handle.
func Reconcile(lines []string) (int, error) {
	pairs, err := parsePairs(lines)
	if err != nil {
		return 0, err
	}
	left, right := aoc.Unzip(pairs)
	slices.Sort(left)
	slices.Sort(right)

	total := 0
	for i := range left {
		total += aoc.AbsDiff(left[i], right[i])
	}
	return total, nil
}

// SimilarityScore sums, over the left column, each value multiplied
// by how often it appears in the right column.
func SimilarityScore(lines []string) (int, error) {
	pairs, err := parsePairs(lines)
	if err != nil {
		return 0, err
	}
	left, right := aoc.Unzip(pairs)
	counts := aoc.CountValues(right)

	total := 0
	for _, v := range left {
		total += v * counts[v]
	}
	return total, nil
}

/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (s solver) D1p1() any {
	return aoc.MustGet(Reconcile(s.Lines()))
}

// want=31
func (s solver) D1p2() any {
	return aoc.MustGet(SimilarityScore(s.Lines()))
}
