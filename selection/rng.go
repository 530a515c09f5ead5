// SPDX-License-Identifier: MIT
// Package: lvlpuzzle/selection
//
// rng.go — deterministic random source for RandomPivot.
//
// Policy:
//   • No time-based seeding anywhere: same seed ⇒ same pivot sequence.
//   • seed==0 maps to defaultRNGSeed so the zero value is reproducible too.
//   • math/rand.Rand is NOT goroutine-safe; each call that needs one and
//     was not handed one via WithRand builds its own.

package selection

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or ask for
// RandomPivot without supplying a source.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}
