package sections

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPair indicates a line that is not "a-b,c-d" with unsigned
// integers and a <= b, c <= d.
var ErrMalformedPair = errors.New("sections: malformed pair")

// Range is an inclusive range of section IDs.
type Range struct {
	Start, End uint64
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Pair is one line of assignments.
type Pair struct {
	First, Second Range
}

// ParsePair parses "a-b,c-d".
func ParsePair(line string) (Pair, error) {
	left, right, ok := strings.Cut(line, ",")
	if !ok {
		return Pair{}, ErrMalformedPair
	}
	first, err := parseRange(left)
	if err != nil {
		return Pair{}, err
	}
	second, err := parseRange(right)
	if err != nil {
		return Pair{}, err
	}
	return Pair{First: first, Second: second}, nil
}

func parseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, ErrMalformedPair
	}
	start, err := strconv.ParseUint(lo, 10, 64)
	if err != nil {
		return Range{}, ErrMalformedPair
	}
	end, err := strconv.ParseUint(hi, 10, 64)
	if err != nil || start > end {
		return Range{}, ErrMalformedPair
	}
	return Range{Start: start, End: end}, nil
}

// CountContained counts pairs where either range contains the other.
func CountContained(input string) (int, error) {
	return count(input, func(p Pair) bool {
		return p.First.Contains(p.Second) || p.Second.Contains(p.First)
	})
}

// CountOverlapping counts pairs whose ranges overlap.
func CountOverlapping(input string) (int, error) {
	return count(input, func(p Pair) bool {
		return p.First.Overlaps(p.Second)
	})
}

func count(input string, keep func(Pair) bool) (int, error) {
	n := 0
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		p, err := ParsePair(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %q: %w", i+1, line, err)
		}
		if keep(p) {
			n++
		}
	}
	return n, nil
}
