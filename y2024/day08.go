package main

import (
	aoc "github.com/jmhart/aoc2024"
)

// Day 8: antenna antinodes.

// Antinodes counts the distinct antinode positions created by pairs
// of same-frequency antennas. Without resonance an antinode sits one
// pair-distance beyond each antenna; with resonance every grid point
// in line with the pair (at pair-distance steps, antennas included)
// is an antinode.
func Antinodes(g aoc.Grid[byte], resonant bool) int {
	byFreq := map[byte][]aoc.Pt{}
	g.ForPts(func(p aoc.Pt, v byte) {
		if v != '.' {
			byFreq[v] = append(byFreq[v], p)
		}
	})

	antinodes := map[aoc.Pt]bool{}
	mark := func(from, step aoc.Pt) {
		p := from.Add(step)
		if resonant {
			p = from
		}
		for {
			if _, ok := g.AtOk(p); !ok {
				return
			}
			antinodes[p] = true
			if !resonant {
				return
			}
			p = p.Add(step)
		}
	}
	for _, antennas := range byFreq {
		for i, a := range antennas {
			for _, b := range antennas[i+1:] {
				d := b.Sub(a)
				mark(b, d)
				mark(a, aoc.Pt{X: -d.X, Y: -d.Y})
			}
		}
	}
	return len(antinodes)
}

/*
want=14

............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
*/
func (s solver) D8p1() any {
	return Antinodes(aoc.ParseGrid(s.Lines()), false)
}

// want=34
func (s solver) D8p2() any {
	return Antinodes(aoc.ParseGrid(s.Lines()), true)
}
