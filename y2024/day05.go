package main

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	aoc "github.com/jmhart/aoc2024"
)

// Day 5: page ordering rules for the sleigh launch safety manual.

var ruleRx = regexp.MustCompile(`^(\d+)\|(\d+)$`)

type pageRules map[[2]int]bool

func (r pageRules) before(a, b int) bool {
	return r[[2]int{a, b}]
}

// parseManual splits the input into the rule section (a|b lines) and
// the update section (comma-separated page lists).
func parseManual(lines []string) (pageRules, [][]int, error) {
	rules := make(pageRules)
	var updates [][]int
	inRules := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			inRules = false
			continue
		}
		if inRules {
			m := ruleRx.FindStringSubmatch(line)
			if m == nil {
				return nil, nil, fmt.Errorf("bad rule line %q", line)
			}
			rules[[2]int{aoc.Int(m[1]), aoc.Int(m[2])}] = true
			continue
		}
		updates = append(updates, aoc.Ints(strings.Split(line, ",")...))
	}
	return rules, updates, nil
}

func updateValid(update []int, rules pageRules) bool {
	for i, a := range update {
		for _, b := range update[i+1:] {
			if rules.before(b, a) {
				return false
			}
		}
	}
	return true
}

// MiddlePageSum sums the middle page of every correctly ordered
// update; with reorder set it instead fixes the incorrectly ordered
// updates and sums their middles.
func MiddlePageSum(lines []string, reorder bool) (int, error) {
	rules, updates, err := parseManual(lines)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, update := range updates {
		valid := updateValid(update, rules)
		if valid && !reorder {
			total += update[len(update)/2]
		}
		if !valid && reorder {
			fixed := slices.Clone(update)
			slices.SortStableFunc(fixed, func(a, b int) int {
				switch {
				case rules.before(a, b):
					return -1
				case rules.before(b, a):
					return 1
				}
				return 0
			})
			total += fixed[len(fixed)/2]
		}
	}
	return total, nil
}

/*
want=143

47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
*/
func (s solver) D5p1() any {
	return aoc.MustGet(MiddlePageSum(s.Lines(), false))
}

// want=123
func (s solver) D5p2() any {
	return aoc.MustGet(MiddlePageSum(s.Lines(), true))
}
