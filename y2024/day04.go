package main

import (
	aoc "github.com/jmhart/aoc2024"
)

// Day 4: word search.

// CountXMAS counts occurrences of "XMAS" in the grid, in all eight
// directions.
func CountXMAS(g aoc.Grid[byte]) int {
	count := 0
	g.ForPts(func(p aoc.Pt, v byte) {
		if v != 'X' {
			return
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if wordAt(g, p, aoc.Pt{X: dx, Y: dy}, "XMAS") {
					count++
				}
			}
		}
	})
	return count
}

func wordAt(g aoc.Grid[byte], p, step aoc.Pt, word string) bool {
	for i := 0; i < len(word); i++ {
		v, ok := g.AtOk(p)
		if !ok || v != word[i] {
			return false
		}
		p = p.Add(step)
	}
	return true
}

// CountCrossMAS counts X shapes whose both diagonals read "MAS" (in
// either direction), centered on the A.
func CountCrossMAS(g aoc.Grid[byte]) int {
	count := 0
	g.ForPts(func(p aoc.Pt, v byte) {
		if v != 'A' {
			return
		}
		if masDiagonal(g, p, aoc.Pt{X: 1, Y: 1}) && masDiagonal(g, p, aoc.Pt{X: 1, Y: -1}) {
			count++
		}
	})
	return count
}

func masDiagonal(g aoc.Grid[byte], center, step aoc.Pt) bool {
	a, aok := g.AtOk(center.Sub(step))
	b, bok := g.AtOk(center.Add(step))
	if !aok || !bok {
		return false
	}
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}

/*
want=18

MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func (s solver) D4p1() any {
	return CountXMAS(aoc.ParseGrid(s.Lines()))
}

// want=9
func (s solver) D4p2() any {
	return CountCrossMAS(aoc.ParseGrid(s.Lines()))
}
