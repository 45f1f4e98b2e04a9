package aoc

// Graph is a directed graph with integer edge weights. For an
// undirected graph, add both edge directions.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge adds the directed edge a->b.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// AddBiEdge adds edges in both directions between a and b.
func (g *Graph[K]) AddBiEdge(a, b K, dist int) {
	g.AddEdge(a, b, dist)
	g.AddEdge(b, a, dist)
}

// ReachableNodes returns every node reachable from a, including a
// itself.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// NumPaths returns the number of distinct simple paths from start to
// end.
func (g *Graph[K]) NumPaths(start, end K) int {
	return g.numPathsHelper(start, end, make(map[K]int))
}

func (g *Graph[K]) numPathsHelper(start, end K, visited map[K]int) int {
	if start == end {
		return 1
	}
	visited[start]++
	defer func() {
		visited[start]--
	}()
	count := 0
	for k := range g.Edges[start] {
		if visited[k] == 0 {
			count += g.numPathsHelper(k, end, visited)
		}
	}
	return count
}

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
