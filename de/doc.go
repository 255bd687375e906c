// Package de implements self-adaptive Differential Evolution
// (DE/rand/1/bin) for black-box global minimization.
//
// Differential Evolution keeps a population of candidate positions and
// improves them generation by generation through mutation, crossover and
// selection — no gradients, only a cost function. This implementation
// follows the self-adaptive scheme of Brest et al., "Self-Adapting Control
// Parameters in Differential Evolution: A Comparative Study on Numerical
// Benchmark Problems" (2006): the crossover rate cr and differential
// weight f are carried by each individual and evolved along with it.
//
// Algorithm outline (one generation):
//
//  1. Selection: for every slot i, swap current[i] and best[i] when
//     current[i] has a cost ≤ best[i]'s (non-strict on purpose — equal-cost
//     individuals keep moving, which counters stagnation).
//  2. Reproduction: for every slot i, pick three pairwise-distinct slots
//     id1, id2, id3; self-adapt cr and f (redraw with a small probability,
//     otherwise inherit from best[i]); pick one forced mutation dimension;
//     then per dimension d:
//     pos[d] = best[id3].pos[d] + f·(best[id1].pos[d] − best[id2].pos[d])
//     when d is forced or a uniform draw falls below cr, else copy
//     best[i].pos[d]. The forced dimension guarantees at least one mutated
//     component even when cr is 0.
//  3. Evaluation: the caller drives it one cost call at a time via Eval;
//     a generation boundary (every PopSize calls) triggers steps 1–2.
//
// The initial search box only seeds the population — positions are never
// clamped and may wander outside it.
//
// Determinism:
//
//	All randomness flows through a single injected *rand.Rand with a fixed
//	draw order. Two populations built from equal bounds, options and seeds
//	produce identical evaluation sequences and best-cost trajectories.
//
// Complexity:
//
//	– Eval:  one cost call, O(1) bookkeeping; O(PopSize·dim) extra when a
//	  generation boundary is crossed.
//	– Space: O(PopSize·dim).
//
// Errors (sentinel, construction only):
//
//	ErrNoBounds, ErrInvalidBound, ErrNilCost, ErrPopulationTooSmall,
//	ErrInvalidRange, ErrInvalidProbability — see types.go.
//
// Example usage:
//
//	pop, err := de.New(de.UniformBounds(-10, 10, 5), sumOfSquares, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for cost := range pop.Iter() {
//	    if cost < 0.1 || pop.NumCostEvaluations() >= 100000 {
//	        break
//	    }
//	}
//	cost, pos, ok := pop.Best()
package de
