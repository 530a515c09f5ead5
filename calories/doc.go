// Package calories parses blank-line-separated groups of integers and sums
// the largest group totals.
//
// Input format:
//
//	1000
//	2000
//	3000
//
//	4000
//
//	5000
//	6000
//
// Each maximal run of non-blank lines is a group; its total is the sum of
// its lines. A blank line closes the current group and opens the next. The
// last group is always reported, even when it is empty, so empty text yields
// the single total 0.
//
// ⚙️ Usage:
//
//	largest, err := calories.CountCalories(text, 1)
//	topThree, err := calories.CountCalories(text, 3)
//
// CountCalories delegates the top-k step to package selection, so it runs in
// average linear time and accepts the same options (pivot strategy, seed).
package calories
