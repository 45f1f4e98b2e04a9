package main

import (
	aoc "github.com/jmhart/aoc2024"
)

// Day 9: disk fragmenter.

type diskSpan struct {
	id    int // file ID, unused for gaps
	start int
	size  int
}

func (s diskSpan) checksum() int {
	// id * (start + start+1 + ... + start+size-1)
	return s.id * (s.size*s.start + s.size*(s.size-1)/2)
}

// parseDiskMap expands the dense map into file and gap spans. Digits
// alternate between file length and gap length.
func parseDiskMap(diskmap string) (files, gaps []diskSpan) {
	pos := 0
	for i, n := range aoc.Digits(diskmap) {
		if n > 0 {
			if i%2 == 0 {
				files = append(files, diskSpan{id: i / 2, start: pos, size: n})
			} else {
				gaps = append(gaps, diskSpan{start: pos, size: n})
			}
		}
		pos += n
	}
	return files, gaps
}

// CompactChecksum moves file blocks one at a time from the end of the
// disk into the leftmost free block, then returns the checksum.
func CompactChecksum(diskmap string) int {
	var blocks []int // file ID per block, -1 for free
	id := 0
	for i, n := range aoc.Digits(diskmap) {
		v := -1
		if i%2 == 0 {
			v = id
			id++
		}
		for ; n > 0; n-- {
			blocks = append(blocks, v)
		}
	}

	i, j := 0, len(blocks)-1
	for i < j {
		switch {
		case blocks[i] != -1:
			i++
		case blocks[j] == -1:
			j--
		default:
			blocks[i], blocks[j] = blocks[j], -1
		}
	}

	total := 0
	for pos, id := range blocks {
		if id != -1 {
			total += pos * id
		}
	}
	return total
}

// DefragChecksum moves whole files, highest ID first, into the
// leftmost gap that fits and lies left of the file, then returns the
// checksum.
func DefragChecksum(diskmap string) int {
	files, gaps := parseDiskMap(diskmap)
	for i := len(files) - 1; i >= 0; i-- {
		f := &files[i]
		for gi := range gaps {
			gap := &gaps[gi]
			if gap.start >= f.start {
				break
			}
			if gap.size < f.size {
				continue
			}
			f.start = gap.start
			gap.start += f.size
			gap.size -= f.size
			break
		}
	}

	total := 0
	for _, f := range files {
		total += f.checksum()
	}
	return total
}

/*
want=1928

2333133121414131402
*/
func (s solver) D9p1() any {
	return CompactChecksum(s.Text())
}

// want=2858
func (s solver) D9p2() any {
	return DefragChecksum(s.Text())
}
