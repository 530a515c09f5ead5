// SPDX-License-Identifier: MIT
// Package: lvlpuzzle/selection
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     selection algorithms themselves never panic.
//   • Defaults are deterministic: MedianOfThree pivot, in-place work.
//   • Options apply in order; later options override earlier ones.

package selection

import (
	"fmt"
	"math/rand"
)

// PivotStrategy chooses the pivot index inside the active range.
type PivotStrategy int

const (
	// MedianOfThree uses the median of the first, middle and last element
	// of the active range. Deterministic; sorted and reverse-sorted input
	// stay linear on average.
	MedianOfThree PivotStrategy = iota

	// RandomPivot picks a uniformly random index of the active range from a
	// seeded source (see WithSeed / WithRand).
	RandomPivot
)

// String returns the flag-friendly name of the strategy.
func (p PivotStrategy) String() string {
	switch p {
	case MedianOfThree:
		return "median3"
	case RandomPivot:
		return "random"
	default:
		return fmt.Sprintf("PivotStrategy(%d)", int(p))
	}
}

// ParsePivotStrategy maps "median3" or "random" to a PivotStrategy.
func ParsePivotStrategy(name string) (PivotStrategy, error) {
	switch name {
	case "median3":
		return MedianOfThree, nil
	case "random":
		return RandomPivot, nil
	default:
		return 0, fmt.Errorf("selection: unknown pivot strategy %q", name)
	}
}

// Option customizes a selection call by mutating its config before any
// element is examined.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates the knobs of a single selection call.
type config struct {
	pivot    PivotStrategy
	rng      *rand.Rand // nil ⇒ rngFromSeed(0) when RandomPivot is used
	preserve bool       // work on a private copy of the input
}

// newConfig returns deterministic defaults with opts applied in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{pivot: MedianOfThree}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pivot == RandomPivot && cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// WithPivot selects the pivot strategy. Panics on an unknown strategy.
func WithPivot(p PivotStrategy) Option {
	if p != MedianOfThree && p != RandomPivot {
		panic(fmt.Sprintf("selection: WithPivot(%d): unknown strategy", int(p)))
	}
	return func(c *config) {
		c.pivot = p
	}
}

// WithSeed creates a deterministic random source for RandomPivot.
// seed==0 uses the package default seed. Has no effect under MedianOfThree.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit random source for RandomPivot.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("selection: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithPreserveInput makes Nth, TopK and TopKSum work on a private copy, so
// the caller's slice keeps its order. SelectNth always works in place.
func WithPreserveInput() Option {
	return func(c *config) {
		c.preserve = true
	}
}
