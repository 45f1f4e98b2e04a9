package aoc

import "testing"

func TestSum(t *testing.T) {
	if got := Sum(2, 1, 0, 1, 2, 5); got != 11 {
		t.Errorf("Sum = %v", got)
	}
	if got := Sum[int](); got != 0 {
		t.Errorf("Sum() = %v", got)
	}
}

func TestAbsDiff(t *testing.T) {
	tests := []struct {
		x, y, want int
	}{
		{3, 9, 6},
		{9, 3, 6},
		{5, 5, 0},
		{-2, 3, 5},
	}
	for _, tt := range tests {
		if got := AbsDiff(tt.x, tt.y); got != tt.want {
			t.Errorf("AbsDiff(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGCDLCM(t *testing.T) {
	if got := GCD(12, 18); got != 6 {
		t.Errorf("GCD = %v", got)
	}
	if got := LCM(4, 6); got != 12 {
		t.Errorf("LCM = %v", got)
	}
	if got := LCM(7); got != 7 {
		t.Errorf("LCM(7) = %v", got)
	}
}

func TestPow10(t *testing.T) {
	for n, want := range []int{1, 10, 100, 1000} {
		if got := Pow10(n); got != want {
			t.Errorf("Pow10(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestNumDigits(t *testing.T) {
	tests := []struct {
		v, want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{156, 3},
		{-42, 2},
	}
	for _, tt := range tests {
		if got := NumDigits(tt.v); got != tt.want {
			t.Errorf("NumDigits(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestParallel(t *testing.T) {
	got := Parallel([]int{1, 2, 3, 4}, func(v int) int { return v * v })
	want := []int{1, 4, 9, 16}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Parallel = %v, want %v", got, want)
		}
	}
}
