// Solutions for Advent of Code 2024.
package main

import (
	"embed"

	aoc "github.com/jmhart/aoc2024"
)

//go:embed *.go
var src embed.FS

type solver struct {
	*aoc.Puzzle
}

func main() {
	aoc.Run(2024, src, &solver{})
}
