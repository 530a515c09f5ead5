package rucksack

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var (
	// ErrMalformedRucksack indicates a non-letter item, a line of odd length,
	// or a line count that does not split into groups of three.
	ErrMalformedRucksack = errors.New("rucksack: malformed rucksack")

	// ErrNoCommonItem indicates the compared item sets share nothing.
	ErrNoCommonItem = errors.New("rucksack: no common item")
)

// BadgeGroupSize is the number of rucksacks that share one badge.
const BadgeGroupSize = 3

// ItemSet is a set of item types keyed by priority.
type ItemSet uint64

// Priority returns the priority of item, or 0 when item is not a letter.
func Priority(item byte) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	default:
		return 0
	}
}

// NewItemSet returns the set of item types in items.
//
// Errors:
//   - ErrMalformedRucksack — items contains a non-letter.
func NewItemSet(items string) (ItemSet, error) {
	var set ItemSet
	for i := 0; i < len(items); i++ {
		p := Priority(items[i])
		if p == 0 {
			return 0, fmt.Errorf("item %q: %w", items[i], ErrMalformedRucksack)
		}
		set |= 1 << (p - 1)
	}
	return set, nil
}

// Common returns the priority of the single shared item type, or
// ErrNoCommonItem when sets have nothing in common. When several types are
// shared the lowest priority wins.
func Common(sets ...ItemSet) (int, error) {
	if len(sets) == 0 {
		return 0, ErrNoCommonItem
	}
	acc := sets[0]
	for _, s := range sets[1:] {
		acc &= s
	}
	if acc == 0 {
		return 0, ErrNoCommonItem
	}
	return bits.TrailingZeros64(uint64(acc)) + 1, nil
}

// SumCompartments sums the priority of the item type each rucksack carries
// in both of its halves.
func SumCompartments(input string) (int, error) {
	total := 0
	for i, line := range lines(input) {
		if len(line)%2 != 0 {
			return 0, fmt.Errorf("line %d: odd item count %d: %w", i+1, len(line), ErrMalformedRucksack)
		}
		half := len(line) / 2
		left, err := NewItemSet(line[:half])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		right, err := NewItemSet(line[half:])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		p, err := Common(left, right)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += p
	}
	return total, nil
}

// SumBadges sums the priority of the badge shared by each group of
// BadgeGroupSize consecutive rucksacks.
func SumBadges(input string) (int, error) {
	ls := lines(input)
	if len(ls)%BadgeGroupSize != 0 {
		return 0, fmt.Errorf("%d rucksacks do not form groups of %d: %w", len(ls), BadgeGroupSize, ErrMalformedRucksack)
	}
	total := 0
	sets := make([]ItemSet, BadgeGroupSize)
	for g := 0; g < len(ls); g += BadgeGroupSize {
		for j := range sets {
			s, err := NewItemSet(ls[g+j])
			if err != nil {
				return 0, fmt.Errorf("line %d: %w", g+j+1, err)
			}
			sets[j] = s
		}
		p, err := Common(sets...)
		if err != nil {
			return 0, fmt.Errorf("group at line %d: %w", g+1, err)
		}
		total += p
	}
	return total, nil
}

// lines splits input on "\n", strips "\r" and drops the empty line a final
// terminator leaves behind.
func lines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	ls := strings.Split(input, "\n")
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}
