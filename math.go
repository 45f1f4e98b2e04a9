package aoc

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// GCD returns the greatest common divisor of the integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}

	lcm := func(a, b int) int {
		return a * b / GCD(a, b)
	}

	result := integers[0]
	for _, v := range integers[1:] {
		result = lcm(result, v)
	}
	return result
}

// Pow10 returns 10^n for small non-negative n.
func Pow10(n int) int {
	out := 1
	for ; n > 0; n-- {
		out *= 10
	}
	return out
}

// NumDigits returns the number of decimal digits in v.
// NumDigits(0) is 1.
func NumDigits(v int) int {
	if v < 0 {
		v = -v
	}
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Parallel maps f over in, one goroutine per element, and returns the
// outputs in order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	out := make([]O, len(in))
	var wg sync.WaitGroup
	wg.Add(len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}
