// Package rng centralizes random sources for the randomized engines
// (augment and walk).
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every call gets its own *rand.Rand;
//     callers passing one in must not share it across goroutines.
package rng

import (
	"math/rand"
	"time"
)

// DefaultSeed is the fixed seed used when callers ask for seed 0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Clock returns a *rand.Rand seeded from the wall clock, for interactive use
// where reproducibility is not wanted.
func Clock() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Or returns r, or a Clock source when r is nil.
func Or(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return Clock()
}
