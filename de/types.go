// Package de - core types and configuration options for the
// self-adaptive Differential Evolution optimizer.
//
// Options follow the package convention: a plain struct with
// DefaultOptions() providing the canonical parameter set, passed to New
// as an optional pointer (nil ⇒ defaults). All validation happens in New
// and reports strict sentinel errors; Options construction itself never
// fails.
package de

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by New. Construction is the only failable
// operation in this package.
var (
	// ErrNoBounds indicates an empty bounds slice — the problem would have
	// zero dimensions, which is a programming error, not a runtime state.
	ErrNoBounds = errors.New("de: bounds must contain at least one dimension")

	// ErrInvalidBound indicates a bound pair with Min > Max.
	ErrInvalidBound = errors.New("de: bound Min must not exceed Max")

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = errors.New("de: cost function is nil")

	// ErrPopulationTooSmall indicates PopSize < 3. Reproduction samples
	// three pairwise-distinct population slots, so smaller populations
	// cannot complete a single reproduction pass.
	ErrPopulationTooSmall = errors.New("de: population size must be at least 3")

	// ErrInvalidRange indicates a cr or f range with Min > Max.
	ErrInvalidRange = errors.New("de: control-parameter range Min must not exceed Max")

	// ErrInvalidProbability indicates a change probability outside [0, 1].
	ErrInvalidProbability = errors.New("de: change probability must be within [0, 1]")
)

// CostFunc maps a position of fixed dimensionality to its cost.
// Lower is better. The function must be deterministic and side-effect
// free for reproducible runs, and must not retain or mutate the slice it
// receives — the engine reuses position buffers across generations.
//
// A NaN result is tolerated: it compares as incomparable and therefore
// never replaces an existing best or survives selection, but the
// evaluation still counts.
type CostFunc func(pos []float64) float64

// Interval is one dimension's initialization range [Min, Max).
// It seeds the initial population only; evolved positions are free to
// leave it. A degenerate interval (Min == Max) pins the dimension to a
// single initial value.
type Interval struct {
	Min, Max float64
}

// UniformBounds returns dim copies of the interval [min, max) — the common
// case of an identical search box in every dimension.
func UniformBounds(min, max float64, dim int) []Interval {
	bounds := make([]Interval, dim)
	for d := range bounds {
		bounds[d] = Interval{Min: min, Max: max}
	}

	return bounds
}

// Options configures the behavior of the Differential Evolution engine.
//
//	– CR           – initialization/redraw range for the crossover rate cr.
//	– CRChangeProb – probability to redraw an individual's cr during
//	  reproduction; otherwise it inherits the personal best's cr.
//	– F            – initialization/redraw range for the differential
//	  weight f. DE is more sensitive to f than to cr; f=0 degenerates to
//	  crossover without mutation, hence the 0.1 default floor.
//	– FChangeProb  – probability to redraw an individual's f.
//	– PopSize      – number of individuals. Benchmarks commonly use 100;
//	  reasonable choices lie between 20 and 200.
//	– Rand         – random source, consumed sequentially; nil selects a
//	  deterministic default stream. Not goroutine-safe — one source per
//	  population.
type Options struct {
	CR           Interval   // crossover rate range, canonical [0, 1)
	CRChangeProb float64    // cr redraw probability
	F            Interval   // differential weight range, canonical [0.1, 1.0)
	FChangeProb  float64    // f redraw probability
	PopSize      int        // number of individuals
	Rand         *rand.Rand // random source; nil for deterministic default
}

// DefaultOptions returns the canonical self-adaptive DE parameter set, as
// defined in Brest et al. (2006), with a population size of 100.
//
// Defaults:
//   - CR:           [0.0, 1.0) — the full usable crossover-rate range.
//   - CRChangeProb: 0.1 (0.05–0.3 perform indistinguishably; 0.1 is the
//     reported reasonable choice).
//   - F:            [0.1, 1.0) — f is rarely taken above 1 in literature.
//   - FChangeProb:  0.1.
//   - PopSize:      100.
//   - Rand:         nil (deterministic default stream).
//
// For most problems this is a fairly good parameter set.
func DefaultOptions() Options {
	return Options{
		CR:           Interval{Min: 0.0, Max: 1.0},
		CRChangeProb: 0.1,
		F:            Interval{Min: 0.1, Max: 1.0},
		FChangeProb:  0.1,
		PopSize:      100,
		Rand:         nil,
	}
}

// individual is one candidate solution: a position, its cached cost and
// its own control parameters. Pure data; all logic lives on Population.
type individual struct {
	pos       []float64
	cost      float64
	evaluated bool // false ⇒ cost is absent

	// self-adapted control parameters
	cr float64
	f  float64
}
