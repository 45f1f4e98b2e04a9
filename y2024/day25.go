package main

import (
	aoc "github.com/jmhart/aoc2024"
)

// Day 25: lock and key schematics.

// parseSchematics encodes every 7x5 block as a bitmask of its '#'
// cells. Locks have a filled top row, keys a filled bottom row. A key
// fits a lock exactly when their masks don't overlap.
func parseSchematics(lines []string) (locks, keys []uint64) {
	for _, block := range aoc.Blocks(lines) {
		var mask uint64
		bit := 0
		for _, row := range block {
			for _, c := range row {
				if c == '#' {
					mask |= 1 << bit
				}
				bit++
			}
		}
		if block[0] == "#####" {
			locks = append(locks, mask)
		} else {
			keys = append(keys, mask)
		}
	}
	return locks, keys
}

// FitCount counts the lock/key pairs that fit together without
// overlapping.
func FitCount(lines []string) int {
	locks, keys := parseSchematics(lines)
	count := 0
	for _, lock := range locks {
		for _, key := range keys {
			if lock&key == 0 {
				count++
			}
		}
	}
	return count
}

/*
want=3

#####
.####
.####
.####
.#.#.
.#...
.....

#####
##.##
.#.##
...##
...#.
...#.
.....

.....
#....
#....
#...#
#.#.#
#.###
#####

.....
.....
#.#..
###..
###.#
###.#
#####

.....
.....
.....
#....
#.#..
#.#.#
#####
*/
func (s solver) D25p1() any {
	return FitCount(s.Lines())
}
