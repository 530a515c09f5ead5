// SPDX-License-Identifier: MIT
// Package: lvlpuzzle/selection

package selection

import "cmp"

// Integer is the set of element types TopKSum can add up.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// TopK returns the k largest values of s in unspecified order.
//
// The boundary rank is len(s)-k: after SelectNth(s, len(s)-k) every element
// at or after that index is among the k largest. The result aliases the tail
// of s unless WithPreserveInput is given, in which case it aliases a copy.
//
// Complexity: O(n) average, O(n²) worst case; O(1) extra (O(n) preserved).
//
// Errors:
//   - ErrInvalidSelection — k < 1 or k > len(s); nothing is moved.
func TopK[T cmp.Ordered](s []T, k int, opts ...Option) ([]T, error) {
	if k < 1 || k > len(s) {
		return nil, selectionErrorf(methodTopK, ErrInvalidSelection, "k=%d, len=%d", k, len(s))
	}
	return topK(s, k, newConfig(opts...)), nil
}

// TopKSum returns the sum of the k largest values of s.
//
// Addition is commutative, so the k largest values only need to be on the
// right side of the boundary rank len(s)-k, not sorted. The sum is computed
// in T; callers choose a T wide enough for their totals.
//
// Example:
//
//	sum, err := TopKSum([]uint64{10000, 4000, 11000, 24000, 10000}, 3)
//	// sum == 45000
//
// Errors:
//   - ErrInvalidSelection — k < 1 or k > len(s), reported before any
//     partitioning; s is left untouched.
func TopKSum[T Integer](s []T, k int, opts ...Option) (T, error) {
	if k < 1 || k > len(s) {
		return 0, selectionErrorf(methodTopKSum, ErrInvalidSelection, "k=%d, len=%d", k, len(s))
	}
	var sum T
	for _, v := range topK(s, k, newConfig(opts...)) {
		sum += v
	}
	return sum, nil
}

// topK is the unchecked core of TopK; 1 <= k <= len(s) is assumed.
func topK[T cmp.Ordered](s []T, k int, cfg config) []T {
	work := s
	if cfg.preserve {
		work = append([]T(nil), s...)
	}
	pivot := len(work) - k
	selectNth(work, pivot, cfg.pivot, cfg.rng)
	return work[pivot:]
}
