package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

// ParseGrid builds a byte grid from input lines. Row y of the grid is
// line y; cell (x, y) is byte x of that line.
func ParseGrid(lines []string) Grid[byte] {
	g := make(Grid[byte], 0, len(lines))
	for _, line := range lines {
		g = append(g, []byte(line))
	}
	return g
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Clone returns a deep copy of the grid.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for i, row := range g {
		out[i] = append([]T(nil), row...)
	}
	return out
}

// ForPts calls f for every cell of the grid.
func (g Grid[T]) ForPts(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Find returns the position of the first cell equal to v, scanning
// rows top to bottom.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	for y, row := range g {
		for x, c := range row {
			if c == v {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

type hashFn[T any] func(*T) deephash.Sum

var hashers map[reflect.Type]any // map[reflect.Type]hashFn[T]

// Hash returns a stable hash of the grid contents, for cycle
// detection over grid states.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

// ForImmediateNeighbors calls f for the up to four orthogonal
// neighbors of p.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f for the eight surrounding points of p.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Path is a point and a direction, the state of anything walking the
// grid.
type Path struct {
	Pt  Pt
	Dir Direction
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta returns the unit step for the direction, with Y growing
// downward.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}
