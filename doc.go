// Package lvlpuzzle is a small collection of line-oriented puzzle solvers:
// each reads a fully materialized text blob and returns a single number.
//
// 🚀 What is inside?
//
//	selection/ — generic quickselect: SelectNth, Nth, TopK, TopKSum
//	calories/  — blank-line group parser + sum of the k largest groups
//	strategy/  — rock-paper-scissors strategy-guide scorer (table lookups)
//	rucksack/  — shared-item priority scorer (bitmask set intersection)
//	sections/  — inclusive range containment / overlap counter
//	cmd/lvlpuzzle — CLI running any solver over a file or stdin
//
// ✨ Why quickselect?
//
//	Summing the k largest totals does not need them sorted, only on the
//	right side of the boundary rank len-k. Partition-based selection gets
//	there in average O(n) instead of O(n log n).
//
// Quick example:
//
//	sum, err := calories.CountCalories("1\n2\n\n5\n\n4", 2)
//	// groups: 3, 5, 4 → two largest: 5 + 4 = 9
//
//	go install github.com/katalvlaran/lvlpuzzle/cmd/lvlpuzzle@latest
package lvlpuzzle
