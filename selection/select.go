// SPDX-License-Identifier: MIT
// Package: lvlpuzzle/selection

package selection

import (
	"cmp"
	"math/rand"
)

// insertionCutoff is the active-range length at or below which selection
// stops partitioning and finishes with insertion sort.
const insertionCutoff = 12

// SelectNth — in-place quickselect
//
// Description:
//
//	Rearranges s so that s[n] holds the value it would have if s were sorted
//	ascending, every element before n is ≤ s[n] and every element after n is
//	≥ s[n]. The relative order of the rest is unspecified.
//
// Algorithm Outline:
//  1. lo, hi = 0, len(s)-1.
//  2. While hi-lo > insertionCutoff:
//     pick a pivot value in s[lo..hi] (see PivotStrategy),
//     three-way partition into  < pivot | == pivot | > pivot,
//     keep only the part that contains n; stop if n hits the == band.
//  3. Insertion-sort the remaining small range.
//
// Complexity:
//
//	Time   = O(n) average, O(n²) worst case
//	Memory = O(1)
//
// Errors:
//   - ErrIndexOutOfRange — n < 0 or n >= len(s). s is not modified.
func SelectNth[T cmp.Ordered](s []T, n int, opts ...Option) error {
	if n < 0 || n >= len(s) {
		return selectionErrorf(methodSelectNth, ErrIndexOutOfRange, "n=%d, len=%d", n, len(s))
	}
	cfg := newConfig(opts...)
	selectNth(s, n, cfg.pivot, cfg.rng)
	return nil
}

// Nth returns the n-th smallest value of s (zero-based rank).
// Without WithPreserveInput, s is partitioned in place as by SelectNth.
//
// Errors:
//   - ErrIndexOutOfRange — n < 0 or n >= len(s).
func Nth[T cmp.Ordered](s []T, n int, opts ...Option) (T, error) {
	var zero T
	if n < 0 || n >= len(s) {
		return zero, selectionErrorf(methodNth, ErrIndexOutOfRange, "n=%d, len=%d", n, len(s))
	}
	cfg := newConfig(opts...)
	work := s
	if cfg.preserve {
		work = append([]T(nil), s...)
	}
	selectNth(work, n, cfg.pivot, cfg.rng)
	return work[n], nil
}

// selectNth is the unchecked core of SelectNth; 0 <= n < len(s) is assumed.
func selectNth[T cmp.Ordered](s []T, n int, strategy PivotStrategy, rng *rand.Rand) {
	lo, hi := 0, len(s)-1
	for hi-lo > insertionCutoff {
		p := choosePivot(s, lo, hi, strategy, rng)
		lt, gt := partition3(s, lo, hi, p)
		switch {
		case n < lt:
			hi = lt - 1
		case n > gt:
			lo = gt + 1
		default:
			// s[lt..gt] all equal the pivot and n lies inside: done.
			return
		}
	}
	insertionSort(s, lo, hi)
}

// choosePivot returns an index in [lo, hi] according to strategy.
func choosePivot[T cmp.Ordered](s []T, lo, hi int, strategy PivotStrategy, rng *rand.Rand) int {
	if strategy == RandomPivot {
		return lo + rng.Intn(hi-lo+1)
	}
	return medianOfThree(s, lo, lo+(hi-lo)/2, hi)
}

// medianOfThree returns whichever of a, b, c indexes the median value.
func medianOfThree[T cmp.Ordered](s []T, a, b, c int) int {
	if s[a] > s[b] {
		a, b = b, a
	}
	// s[a] <= s[b]
	if s[b] <= s[c] {
		return b
	}
	if s[a] > s[c] {
		return a
	}
	return c
}

// partition3 performs a Dutch-national-flag partition of s[lo..hi] around
// the value s[p]. On return:
//
//	s[lo..lt-1] <  pivot
//	s[lt..gt]   == pivot   (never empty)
//	s[gt+1..hi] >  pivot
//
// Complexity: O(hi-lo) time, O(1) space.
func partition3[T cmp.Ordered](s []T, lo, hi, p int) (lt, gt int) {
	pivot := s[p]
	lt, gt = lo, hi
	i := lo
	for i <= gt {
		switch {
		case s[i] < pivot:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case s[i] > pivot:
			s[i], s[gt] = s[gt], s[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

// insertionSort sorts s[lo..hi] ascending in place.
func insertionSort[T cmp.Ordered](s []T, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
