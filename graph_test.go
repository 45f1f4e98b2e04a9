package aoc

import "testing"

func TestReachableNodes(t *testing.T) {
	var g Graph[int]
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(4, 1, 1)

	got := g.ReachableNodes(1)
	for _, n := range []int{1, 2, 3} {
		if !got[n] {
			t.Errorf("node %d not reachable", n)
		}
	}
	// Edges are directed; 4 points at 1, not the other way.
	if got[4] {
		t.Error("node 4 should not be reachable from 1")
	}
}

func TestNumPaths(t *testing.T) {
	// Diamond: 1 -> {2, 3} -> 4.
	var g Graph[int]
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 1)
	g.AddEdge(2, 4, 1)
	g.AddEdge(3, 4, 1)

	if got := g.NumPaths(1, 4); got != 2 {
		t.Errorf("NumPaths(1, 4) = %d, want 2", got)
	}
	if got := g.NumPaths(4, 1); got != 0 {
		t.Errorf("NumPaths(4, 1) = %d, want 0", got)
	}
}
