// SPDX-License-Identifier: MIT
// Package: lvlpuzzle/selection
//
// errors.go — sentinel errors for the selection package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (method, k, n, len) is attached with %w at the call site.
//   • Validation happens before any element is moved, so a failed call
//     never leaves the input partially reordered.

package selection

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection indicates k is zero, negative, or larger than the
// number of elements available for a top-k request.
// Usage: if errors.Is(err, ErrInvalidSelection) { /* ask for fewer */ }.
var ErrInvalidSelection = errors.New("selection: k must satisfy 1 <= k <= len")

// ErrIndexOutOfRange indicates a rank n outside [0, len) for SelectNth/Nth.
var ErrIndexOutOfRange = errors.New("selection: rank out of range")

// Method tokens used as error context prefixes.
const (
	methodSelectNth = "SelectNth"
	methodNth       = "Nth"
	methodTopK      = "TopK"
	methodTopKSum   = "TopKSum"
)

// selectionErrorf wraps err with a "<method>: <message>: " prefix while
// keeping err reachable through errors.Is.
//
// Complexity: O(len(format) + Σlen(args)).
func selectionErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
