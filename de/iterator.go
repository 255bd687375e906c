// Package de - stepwise iteration adapter over the evaluation protocol.
package de

import "iter"

// Iter returns a lazy, unbounded sequence of best-so-far costs: each
// element performs exactly one cost evaluation (one Eval call) and yields
// the global-best cost immediately after it.
//
// The sequence never terminates on its own — stop it from the loop body:
//
//	budget := 100000
//	for cost := range pop.Iter() {
//	    if cost < 0.1 || pop.NumCostEvaluations() >= budget {
//	        break
//	    }
//	}
//
// Iter is a view, not a cursor: it holds no state beyond the receiver, so
// breaking out and ranging over a fresh Iter resumes exactly where the
// population left off.
func (p *Population) Iter() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			p.Eval()
			if !yield(p.bestCost) {
				return
			}
		}
	}
}
