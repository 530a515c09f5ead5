package calories

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// ParseGroups splits text into blank-line-delimited groups and returns each
// group's total in order of appearance.
//
// Rules:
//   - Lines are separated by "\n"; one trailing "\r" per line is dropped.
//   - A final line terminator does not start an extra line.
//   - A zero-length line closes the current group. Whitespace-only lines
//     are not blank and fail to parse.
//   - The last group is always emitted, so the result is never empty.
//
// Errors:
//   - ErrMalformedInput — a line is not a base-10 uint64, or a group total
//     overflows. No partial result is returned.
//
// Complexity: O(len(text)) time, O(groups) space.
func ParseGroups(text string) ([]uint64, error) {
	var (
		totals []uint64
		total  uint64
		carry  uint64
	)
	for i, line := range splitLines(text) {
		if line == "" {
			totals = append(totals, total)
			total = 0
			continue
		}
		v, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", i+1, line, ErrMalformedInput)
		}
		total, carry = bits.Add64(total, v, 0)
		if carry != 0 {
			return nil, fmt.Errorf("line %d: group total overflows uint64: %w", i+1, ErrMalformedInput)
		}
	}
	return append(totals, total), nil
}

// splitLines breaks text into lines the way a line scanner would: "\n"
// separates, a trailing "\r" is stripped, and a terminating "\n" does not
// produce an empty final line. Empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
