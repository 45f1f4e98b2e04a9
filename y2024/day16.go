package main

import (
	aoc "github.com/jmhart/aoc2024"
)

// Day 16: reindeer maze. Dijkstra over (position, facing) states;
// stepping forward costs 1, turning in place costs 1000.

type mazeSolution struct {
	score int
	prev  map[aoc.Path][]aoc.Path
	ends  []aoc.Path
}

func solveMaze(g aoc.Grid[byte]) mazeSolution {
	start, ok := aoc.Find(g, byte('S'))
	if !ok {
		panic("maze has no start")
	}
	end, ok := aoc.Find(g, byte('E'))
	if !ok {
		panic("maze has no end")
	}

	dist := map[aoc.Path]int{}
	prev := map[aoc.Path][]aoc.Path{}
	pq := aoc.MinQueue[aoc.Path]()

	relax := func(from, to aoc.Path, d int) {
		old, seen := dist[to]
		switch {
		case !seen || d < old:
			dist[to] = d
			prev[to] = []aoc.Path{from}
			pq.Push(&aoc.PQI[aoc.Path]{V: to, P: d})
		case d == old:
			prev[to] = append(prev[to], from)
		}
	}

	first := aoc.Path{Pt: start, Dir: aoc.Right}
	dist[first] = 0
	pq.Push(&aoc.PQI[aoc.Path]{V: first, P: 0})
	for pq.Len() > 0 {
		cur := pq.Pop()
		if cur.P > dist[cur.V] {
			continue // stale entry
		}
		state := cur.V
		if ahead := state.Pt.Add(state.Dir.Delta()); g.At(ahead) != '#' {
			relax(state, aoc.Path{Pt: ahead, Dir: state.Dir}, cur.P+1)
		}
		for _, right := range []bool{true, false} {
			relax(state, aoc.Path{Pt: state.Pt, Dir: state.Dir.Turn(right)}, cur.P+1000)
		}
	}

	sol := mazeSolution{score: -1, prev: prev}
	for d := aoc.Up; d <= aoc.Left; d++ {
		state := aoc.Path{Pt: end, Dir: d}
		v, ok := dist[state]
		if !ok {
			continue
		}
		switch {
		case sol.score == -1 || v < sol.score:
			sol.score = v
			sol.ends = []aoc.Path{state}
		case v == sol.score:
			sol.ends = append(sol.ends, state)
		}
	}
	return sol
}

// LowestScore returns the cheapest score from S (facing east) to E.
func LowestScore(g aoc.Grid[byte]) int {
	return solveMaze(g).score
}

// BestPathTiles counts the tiles that lie on at least one
// lowest-score path.
func BestPathTiles(g aoc.Grid[byte]) int {
	sol := solveMaze(g)
	tiles := map[aoc.Pt]bool{}
	seen := map[aoc.Path]bool{}
	var q aoc.Queue[aoc.Path]
	for _, e := range sol.ends {
		q.Push(e)
	}
	q.While(func(state aoc.Path) bool {
		if seen[state] {
			return true
		}
		seen[state] = true
		tiles[state.Pt] = true
		for _, p := range sol.prev[state] {
			q.Push(p)
		}
		return true
	})
	return len(tiles)
}

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (s solver) D16p1() any {
	return LowestScore(aoc.ParseGrid(s.Lines()))
}

// want=45
func (s solver) D16p2() any {
	return BestPathTiles(aoc.ParseGrid(s.Lines()))
}
