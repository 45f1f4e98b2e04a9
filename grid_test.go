package aoc

import "testing"

func TestParseGrid(t *testing.T) {
	g := ParseGrid([]string{"ab", "cd"})
	if got := g.Size(); got != (Pt{2, 2}) {
		t.Fatalf("Size = %v", got)
	}
	if got := g.At(Pt{1, 0}); got != 'b' {
		t.Errorf("At(1,0) = %c", got)
	}
	if _, ok := g.AtOk(Pt{2, 0}); ok {
		t.Error("AtOk out of bounds returned ok")
	}
}

func TestMakeGrid(t *testing.T) {
	g := MakeGrid[int](3, 2)
	if got := g.Size(); got != (Pt{3, 2}) {
		t.Fatalf("Size = %v", got)
	}
	g.Set(Pt{2, 1}, 7)
	if got := g.At(Pt{2, 1}); got != 7 {
		t.Errorf("At = %v", got)
	}
}

func TestGridClone(t *testing.T) {
	g := ParseGrid([]string{"ab", "cd"})
	c := g.Clone()
	c.Set(Pt{0, 0}, 'z')
	if g.At(Pt{0, 0}) != 'a' {
		t.Error("Clone shares storage with original")
	}
}

func TestGridHash(t *testing.T) {
	g1 := ParseGrid([]string{"ab", "cd"})
	g2 := ParseGrid([]string{"ab", "cd"})
	if g1.Hash() != g2.Hash() {
		t.Error("equal grids hash differently")
	}
	g2.Set(Pt{1, 1}, 'x')
	if g1.Hash() == g2.Hash() {
		t.Error("different grids hash the same")
	}
}

func TestFind(t *testing.T) {
	g := ParseGrid([]string{"..#", "#.."})
	p, ok := Find(g, byte('#'))
	if !ok || p != (Pt{2, 0}) {
		t.Errorf("Find = %v, %v", p, ok)
	}
	if _, ok := Find(g, byte('@')); ok {
		t.Error("Find reported a missing value")
	}
}

func TestDirection(t *testing.T) {
	if got := Up.Turn(true); got != Right {
		t.Errorf("Up.Turn(right) = %v", got)
	}
	if got := Up.Turn(false); got != Left {
		t.Errorf("Up.Turn(left) = %v", got)
	}
	if got := (Pt{1, 1}).Add(Down.Delta()); got != (Pt{1, 2}) {
		t.Errorf("Add(Down.Delta()) = %v", got)
	}
}

func TestMDist(t *testing.T) {
	if got := (Pt{0, 0}).MDist(Pt{3, -4}); got != 7 {
		t.Errorf("MDist = %v", got)
	}
}
