package calories

import (
	"errors"

	"github.com/katalvlaran/lvlpuzzle/selection"
)

var (
	// ErrMalformedInput indicates a non-blank line that is not a non-negative
	// decimal integer, or a group total that overflows uint64.
	ErrMalformedInput = errors.New("calories: malformed input")

	// ErrInvalidSelection indicates k is zero or exceeds the number of groups.
	// It is the selection package sentinel, so either name matches errors.Is.
	ErrInvalidSelection = selection.ErrInvalidSelection
)
