package main

import (
	"slices"

	aoc "github.com/jmhart/aoc2024"
)

// Day 2: count safe reactor reports.

// reportSafe reports whether levels are strictly monotonic with every
// step between 1 and 3.
func reportSafe(levels []int) bool {
	increasing, decreasing := 0, 0
	for i := 0; i+1 < len(levels); i++ {
		delta := levels[i+1] - levels[i]
		if delta > 0 {
			increasing++
		} else if delta < 0 {
			decreasing++
		}
		if d := aoc.AbsDiff(levels[i+1], levels[i]); d < 1 || d > 3 {
			return false
		}
	}
	return increasing == 0 || decreasing == 0
}

// SafeReports counts the safe reports. With the dampener, a report
// also counts if removing any single level makes it safe.
func SafeReports(lines []string, dampener bool) int {
	count := 0
	for _, line := range lines {
		fields := aoc.Fields(line)
		if len(fields) == 0 {
			continue
		}
		levels := aoc.Ints(fields...)
		if reportSafe(levels) {
			count++
			continue
		}
		if !dampener {
			continue
		}
		for i := range levels {
			if reportSafe(slices.Concat(levels[:i], levels[i+1:])) {
				count++
				break
			}
		}
	}
	return count
}

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (s solver) D2p1() any {
	return SafeReports(s.Lines(), false)
}

// want=4
func (s solver) D2p2() any {
	return SafeReports(s.Lines(), true)
}
