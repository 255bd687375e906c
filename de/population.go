// Package de - population engine: construction, selection, reproduction
// and the incremental evaluation protocol.
package de

import "math/rand"

// Population holds the evolving candidate solutions and all bookkeeping
// of the self-adaptive DE run. It is created by New, mutated exclusively
// through Eval, and is not safe for concurrent use.
type Population struct {
	// curr is the generation under evaluation; best[i] is slot i's
	// personal best found so far. The two slices are parallel-indexed
	// and always of equal length PopSize.
	curr []individual
	best []individual

	opts   Options
	bounds []Interval
	cost   CostFunc
	rng    *rand.Rand
	dim    int

	// bestIdx points at the slot whose curr or best side holds the
	// lowest-cost solution ever evaluated; bestCost caches that cost for
	// O(1) comparison. Both are meaningful only when hasBest.
	bestIdx  int
	bestCost float64
	hasBest  bool

	evals int

	// countdown is the number of individuals in curr not yet evaluated in
	// the active generation; 0 triggers selection + reproduction on the
	// next Eval.
	countdown int
}

// New creates a fully initialized population.
//
// Contracts:
//   - bounds must be non-empty; each pair needs Min <= Max. One pair per
//     dimension; the pairs only seed initialization (no later clamping).
//   - cost must be non-nil; see CostFunc for its obligations.
//   - opts may be nil ⇒ DefaultOptions(). A nil opts.Rand selects the
//     deterministic default stream (rng.go seed policy).
//
// Every individual's initial cr, f and position components are drawn
// uniformly within their configured ranges, in that fixed order. No cost
// evaluation happens here.
//
// Errors: strict sentinels from types.go; on error no population is
// returned.
//
// Complexity: O(PopSize·dim) time and space.
func New(bounds []Interval, cost CostFunc, opts *Options) (*Population, error) {
	var o Options
	if opts != nil {
		o = *opts
	} else {
		o = DefaultOptions()
	}

	if len(bounds) == 0 {
		return nil, ErrNoBounds
	}
	for _, iv := range bounds {
		if iv.Min > iv.Max {
			return nil, ErrInvalidBound
		}
	}
	if cost == nil {
		return nil, ErrNilCost
	}
	if o.PopSize < 3 {
		return nil, ErrPopulationTooSmall
	}
	if o.CR.Min > o.CR.Max || o.F.Min > o.F.Max {
		return nil, ErrInvalidRange
	}
	if o.CRChangeProb < 0 || o.CRChangeProb > 1 || o.FChangeProb < 0 || o.FChangeProb > 1 {
		return nil, ErrInvalidProbability
	}

	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(0)
	}

	dim := len(bounds)
	p := &Population{
		curr:      make([]individual, o.PopSize),
		best:      make([]individual, o.PopSize),
		opts:      o,
		bounds:    append([]Interval(nil), bounds...),
		cost:      cost,
		rng:       rng,
		dim:       dim,
		countdown: o.PopSize,
	}

	for i := range p.curr {
		p.curr[i].pos = make([]float64, dim)
		p.best[i].pos = make([]float64, dim)
	}

	// Fixed draw order per individual: cr, f, then each dimension.
	// Part of the reproducibility contract — do not reorder.
	for i := range p.curr {
		ind := &p.curr[i]
		ind.cr = uniform(rng, o.CR)
		ind.f = uniform(rng, o.F)
		for d := 0; d < dim; d++ {
			ind.pos[d] = uniform(rng, p.bounds[d])
		}
	}

	return p, nil
}

// updateBest runs selection: for every slot, the current individual
// replaces the personal best when the best has no cost yet or the current
// cost is <= the best cost. Non-strict comparison is intentional — an
// equal-cost individual still moves, which keeps the search from
// stagnating on plateaus.
//
// The replacement is a struct swap (slice headers change hands, nothing
// is copied), so selection costs O(PopSize) regardless of dim.
func (p *Population) updateBest() {
	for i := range p.curr {
		curr := &p.curr[i]
		best := &p.best[i]

		swap := !best.evaluated
		if !swap && curr.evaluated {
			// NaN costs fail this test and never displace a best.
			swap = curr.cost <= best.cost
		}

		if swap {
			*curr, *best = *best, *curr
		}
	}
}

// updatePositions runs reproduction: DE/rand/1/bin with self-adapted
// control parameters, rebuilding every curr position from the personal
// bests. Needs many random draws; their order below is fixed by the
// reproducibility contract.
func (p *Population) updatePositions() {
	n := len(p.curr)
	for i := range p.curr {
		id1, id2, id3 := threeDistinct(p.rng, n)

		curr := &p.curr[i]
		best := &p.best[i]

		// Self-adaptation: occasionally redraw cr and f, otherwise
		// inherit the personal best's values (Brest et al. 2006).
		if p.rng.Float64() < p.opts.CRChangeProb {
			curr.cr = uniform(p.rng, p.opts.CR)
		} else {
			curr.cr = best.cr
		}
		if p.rng.Float64() < p.opts.FChangeProb {
			curr.f = uniform(p.rng, p.opts.F)
		} else {
			curr.f = best.f
		}

		b1 := p.best[id1].pos
		b2 := p.best[id2].pos
		b3 := p.best[id3].pos

		// One dimension always mutates, so a zero crossover rate cannot
		// freeze an individual in place.
		forced := p.rng.Intn(p.dim)

		for d := 0; d < p.dim; d++ {
			if d == forced || p.rng.Float64() < curr.cr {
				curr.pos[d] = b3[d] + curr.f*(b1[d]-b2[d])
			} else {
				curr.pos[d] = best.pos[d]
			}
		}

		// Stale cost; the new position awaits evaluation.
		curr.evaluated = false
	}
}

// Eval advances the optimization by exactly one cost evaluation.
//
// When the whole generation has been evaluated (every PopSize-th call),
// it first runs selection and reproduction to produce the next
// generation. Then it evaluates one individual (highest pending index
// first, descending to 0), updates the evaluation counter and, on strict
// improvement, the global best.
//
// Complexity: one cost call + O(1), or O(PopSize·dim) at a generation
// boundary.
func (p *Population) Eval() {
	if p.countdown == 0 {
		p.updateBest()
		p.updatePositions()
		p.countdown = len(p.curr)
	}

	p.countdown--
	ind := &p.curr[p.countdown]

	ind.cost = p.cost(ind.pos)
	ind.evaluated = true
	p.evals++

	// Strict < so the cache keeps the earliest holder among ties; a NaN
	// cost can only enter as the very first evaluation ever.
	if !p.hasBest || ind.cost < p.bestCost {
		p.bestCost = ind.cost
		p.bestIdx = p.countdown
		p.hasBest = true
	}
}

// Best returns the lowest-cost solution found so far as a (cost, position)
// pair. ok is false until the first evaluation has happened.
//
// Selection and reproduction may shuffle which side of slot bestIdx holds
// the historical best, so the winner is resolved at query time: whichever
// of curr/best currently carries the lower evaluated cost. The returned
// position is a copy — the engine keeps reusing its internal buffers.
//
// Complexity: O(dim) for the copy.
func (p *Population) Best() (cost float64, pos []float64, ok bool) {
	if !p.hasBest {
		return 0, nil, false
	}

	curr := &p.curr[p.bestIdx]
	best := &p.best[p.bestIdx]

	winner := best
	switch {
	case !curr.evaluated:
		winner = best
	case !best.evaluated:
		winner = curr
	case curr.cost < best.cost:
		winner = curr
	}

	return winner.cost, append([]float64(nil), winner.pos...), true
}

// NumCostEvaluations returns the total number of cost-function calls
// performed so far. It starts at 0 and increases by exactly 1 per Eval.
func (p *Population) NumCostEvaluations() int { return p.evals }

// Dim returns the problem dimensionality.
func (p *Population) Dim() int { return p.dim }

// Size returns the number of individuals in the population.
func (p *Population) Size() int { return len(p.curr) }
