package main

import (
	aoc "github.com/jmhart/aoc2024"
)

// Day 6: guard patrol.

// noObstruction is an out-of-bounds sentinel; the walk never reaches
// it.
var noObstruction = aoc.Pt{X: -1, Y: -1}

// patrol walks the guard from start facing up, turning right at every
// obstacle, until it leaves the grid or revisits a position+direction
// state (a loop). It returns the visited cells and whether the walk
// looped. extra is treated as one additional obstruction.
func patrol(g aoc.Grid[byte], start, extra aoc.Pt) (map[aoc.Pt]bool, bool) {
	visited := map[aoc.Pt]bool{start: true}
	seen := map[aoc.Path]bool{}
	state := aoc.Path{Pt: start, Dir: aoc.Up}
	for {
		if seen[state] {
			return visited, true
		}
		seen[state] = true
		next := state.Pt.Add(state.Dir.Delta())
		v, ok := g.AtOk(next)
		if !ok {
			return visited, false
		}
		if v == '#' || next == extra {
			state.Dir = state.Dir.Turn(true)
			continue
		}
		state.Pt = next
		visited[next] = true
	}
}

func guardStart(g aoc.Grid[byte]) aoc.Pt {
	start, ok := aoc.Find(g, byte('^'))
	if !ok {
		panic("no guard on grid")
	}
	return start
}

// GuardedCells counts the distinct cells the guard visits before
// leaving the grid.
func GuardedCells(g aoc.Grid[byte]) int {
	visited, _ := patrol(g, guardStart(g), noObstruction)
	return len(visited)
}

// LoopObstructions counts the cells where a single new obstruction
// traps the guard in a loop. Only cells on the unobstructed path can
// change the walk, so those are the candidates; each one is checked
// independently, fanned out with aoc.Parallel.
func LoopObstructions(g aoc.Grid[byte]) int {
	start := guardStart(g)
	base, _ := patrol(g, start, noObstruction)
	delete(base, start)

	var candidates []aoc.Pt
	for p := range base {
		candidates = append(candidates, p)
	}
	loops := aoc.Parallel(candidates, func(p aoc.Pt) int {
		if _, looped := patrol(g, start, p); looped {
			return 1
		}
		return 0
	})
	return aoc.Sum(loops...)
}

/*
want=41

....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func (s solver) D6p1() any {
	return GuardedCells(aoc.ParseGrid(s.Lines()))
}

// want=6
func (s solver) D6p2() any {
	return LoopObstructions(aoc.ParseGrid(s.Lines()))
}
