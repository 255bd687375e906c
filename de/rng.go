// Package de - RNG utilities for the evolution engine.
//
// This file centralizes deterministic random generation for the optimizer.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Performance: O(1) helpers with no allocations — reproduction calls
//     them once per individual per generation.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Population owns exactly one
//     *rand.Rand and is itself single-threaded, so no locking is needed.
//   - Use DeriveSeed to build independent streams for multi-restart runs.
package de

import "math/rand"

// defaultRNGSeed is the fixed seed used when the caller supplies no random
// source. The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed, for callers running independent restarts of the optimizer.
//
// Rationale:
//   - Restart k of a multi-start search wants an RNG stream uncorrelated
//     with restart k-1 while staying a pure function of (parent, stream).
//   - A SplitMix64-style avalanche mix eliminates the correlations plain
//     seed arithmetic (parent+k) would introduce.
//
// Constants are the canonical SplitMix64 multipliers/finalizer (Vigna 2014).
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// uniform draws from [min, max). A degenerate interval (min == max)
// returns min, so zero-width bounds pin their dimension exactly.
//
// Complexity: O(1).
func uniform(rng *rand.Rand, iv Interval) float64 {
	return iv.Min + rng.Float64()*(iv.Max-iv.Min)
}

// threeDistinct samples three pairwise-distinct indices from [0, n) by
// resampling on collision. Coincidence with a caller's own index is
// allowed — DE/rand/1 does not require the base vectors to avoid the
// target slot. Requires n >= 3 (enforced at construction) or the
// resampling loop could not terminate.
//
// Complexity: expected O(1) draws for n >= 3.
func threeDistinct(rng *rand.Rand, n int) (id1, id2, id3 int) {
	id1 = rng.Intn(n)

	id2 = rng.Intn(n)
	for id2 == id1 {
		id2 = rng.Intn(n)
	}

	id3 = rng.Intn(n)
	for id3 == id1 || id3 == id2 {
		id3 = rng.Intn(n)
	}

	return id1, id2, id3
}
