package main

import (
	"regexp"

	aoc "github.com/jmhart/aoc2024"
)

// Day 3: scan corrupted memory for mul instructions.

var mulRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// ScanMuls sums the products of all valid mul(x,y) instructions in
// memory. When gated, don't() disables following muls until the next
// do().
func ScanMuls(memory string, gated bool) int {
	total := 0
	enabled := true
	for _, m := range mulRx.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if enabled || !gated {
				total += aoc.Int(m[1]) * aoc.Int(m[2])
			}
		}
	}
	return total
}

/*
want=161

xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))
*/
func (s solver) D3p1() any {
	return ScanMuls(s.Text(), false)
}

/*
want=48

xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func (s solver) D3p2() any {
	return ScanMuls(s.Text(), true)
}
