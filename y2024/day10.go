package main

import (
	aoc "github.com/jmhart/aoc2024"
)

// Day 10: hiking trails.

// trailGraph builds a directed graph over grid cells with an edge
// from every cell to each orthogonal neighbor exactly one height
// above it.
func trailGraph(g aoc.Grid[byte]) *aoc.Graph[aoc.Pt] {
	var graph aoc.Graph[aoc.Pt]
	g.ForPts(func(p aoc.Pt, v byte) {
		graph.AddNode(p)
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if w, ok := g.AtOk(n); ok && w == v+1 {
				graph.AddEdge(p, n, 1)
			}
			return true
		})
	})
	return &graph
}

// TrailheadSum scores every trailhead (height 0) and sums the scores.
// A head's score is the number of summits (height 9) it can reach;
// its rating is the number of distinct trails to them.
func TrailheadSum(g aoc.Grid[byte], ratings bool) int {
	graph := trailGraph(g)
	total := 0
	g.ForPts(func(p aoc.Pt, v byte) {
		if v != '0' {
			return
		}
		for n := range graph.ReachableNodes(p) {
			if g.At(n) != '9' {
				continue
			}
			if ratings {
				total += graph.NumPaths(p, n)
			} else {
				total++
			}
		}
	})
	return total
}

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (s solver) D10p1() any {
	return TrailheadSum(aoc.ParseGrid(s.Lines()), false)
}

// want=81
func (s solver) D10p2() any {
	return TrailheadSum(aoc.ParseGrid(s.Lines()), true)
}
