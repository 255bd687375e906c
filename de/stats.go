// Package de - cost-spread diagnostics for stagnation detection.
package de

import "gonum.org/v1/gonum/stat"

// Stats summarizes the per-slot best-known evaluated costs of the
// population. A collapsing StdDev signals converging (or stagnating)
// individuals; callers typically combine it with an evaluation budget to
// decide when to stop or restart.
type Stats struct {
	// Mean and StdDev are computed over one cost per slot: the lower of
	// the slot's current/personal-best evaluated costs. Both are 0 when
	// Evaluated == 0, and StdDev is 0 when Evaluated == 1.
	Mean   float64
	StdDev float64

	// Evaluated counts the slots contributing a cost, i.e. slots with at
	// least one evaluated side. At most Size().
	Evaluated int
}

// Stats computes the current cost spread. Slots that have never been
// evaluated are skipped, so early in the first generation Evaluated may be
// well below Size().
//
// Complexity: O(PopSize) time, O(PopSize) transient space.
func (p *Population) Stats() Stats {
	costs := make([]float64, 0, len(p.curr))
	for i := range p.curr {
		curr := &p.curr[i]
		best := &p.best[i]

		switch {
		case curr.evaluated && best.evaluated:
			if curr.cost < best.cost {
				costs = append(costs, curr.cost)
			} else {
				costs = append(costs, best.cost)
			}
		case curr.evaluated:
			costs = append(costs, curr.cost)
		case best.evaluated:
			costs = append(costs, best.cost)
		}
	}

	if len(costs) == 0 {
		return Stats{}
	}

	s := Stats{
		Mean:      stat.Mean(costs, nil),
		Evaluated: len(costs),
	}
	if len(costs) > 1 {
		s.StdDev = stat.StdDev(costs, nil)
	}

	return s
}
