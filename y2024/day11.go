package main

import (
	aoc "github.com/jmhart/aoc2024"
)

// Day 11: plutonian pebbles.

// blink applies one blink to a single stone and returns the one or
// two resulting stones.
func blink(stone int) []int {
	switch {
	case stone == 0:
		return []int{1}
	case aoc.NumDigits(stone)%2 == 0:
		half := aoc.Pow10(aoc.NumDigits(stone) / 2)
		return []int{stone / half, stone % half}
	}
	return []int{stone * 2024}
}

// StoneCount returns how many stones exist after the given number of
// blinks. Order never matters, so the line is tracked as value
// multiplicities instead of a sequence.
func StoneCount(line string, blinks int) int {
	counts := aoc.CountValues(aoc.Ints(aoc.Fields(line)...))
	for ; blinks > 0; blinks-- {
		next := make(map[int]int, len(counts))
		for stone, n := range counts {
			for _, out := range blink(stone) {
				next[out] += n
			}
		}
		counts = next
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

/*
want=55312

125 17
*/
func (s solver) D11p1() any {
	return StoneCount(s.Text(), 25)
}

// want=65601038650482
func (s solver) D11p2() any {
	return StoneCount(s.Text(), 75)
}
