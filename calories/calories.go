package calories

import (
	"fmt"

	"github.com/katalvlaran/lvlpuzzle/selection"
)

// CountCalories returns the sum of the k largest group totals in text.
//
// k=1 is the largest single group, k=3 the three largest, and so on.
// The group totals are selected in place on a slice owned by this call,
// so opts only tune the pivot strategy (see selection.WithPivot).
//
// Errors:
//   - ErrMalformedInput   — text does not parse (see ParseGroups).
//   - ErrInvalidSelection — k < 1 or k > number of groups.
func CountCalories(text string, k int, opts ...selection.Option) (uint64, error) {
	totals, err := ParseGroups(text)
	if err != nil {
		return 0, err
	}
	sum, err := selection.TopKSum(totals, k, opts...)
	if err != nil {
		return 0, fmt.Errorf("calories: %d groups: %w", len(totals), err)
	}
	return sum, nil
}
