// SPDX-License-Identifier: MIT
// Package: lvlpuzzle/selection

// Package selection finds order statistics and top-k aggregates of a slice
// with partition-based selection (quickselect) instead of a full sort.
//
// 🚀 What is partition-based selection?
//
//	Quickselect picks a pivot, partitions the slice into values below,
//	equal to, and above the pivot, and then continues only into the part
//	that holds the wanted rank. The discarded side is never touched again,
//	which gives average O(n) time versus O(n log n) for sorting.
//
// ✨ Key features:
//   - SelectNth: place the n-th smallest value at index n, smaller values
//     before it and larger values after it (in place).
//   - Nth: the n-th smallest value, optionally leaving the input untouched.
//   - TopK / TopKSum: the k largest values (unordered) and their sum.
//   - Pivot strategies: MedianOfThree (default, deterministic) and
//     RandomPivot (seeded, reproducible).
//
// ⚙️ Usage:
//
//	totals := []uint64{10000, 4000, 11000, 24000, 10000}
//	sum, err := selection.TopKSum(totals, 3)
//	// sum == 45000, totals is now partitioned around index len-3
//
//	sum, err = selection.TopKSum(totals, 3,
//	  selection.WithPivot(selection.RandomPivot),
//	  selection.WithSeed(42),
//	  selection.WithPreserveInput(), // work on a private copy
//	)
//
// Performance:
//
//   - Time:   O(n) average, O(n²) worst case with adversarial pivots.
//   - Memory: O(1) extra in place, O(n) with WithPreserveInput.
//
// Concurrency:
//
//	Functions hold no state. Distinct slices may be processed concurrently;
//	the same slice must not be. A *rand.Rand given via WithRand is not
//	goroutine-safe and must not be shared between concurrent calls.
//
// Floating-point NaN values have no defined order and are not supported.
package selection
