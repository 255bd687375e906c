// White-box tests for invariants that are not observable through the
// public surface: control-parameter initialization, the countdown cycle,
// the selection tie-break and the forced mutation dimension.
package de

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantCost(_ []float64) float64 { return 0 }

// TestNew_ControlParametersWithinRanges: initial cr and f are drawn inside
// their configured ranges for every individual.
func TestNew_ControlParametersWithinRanges(t *testing.T) {
	opts := DefaultOptions()
	opts.PopSize = 50
	opts.CR = Interval{Min: 0.2, Max: 0.4}
	opts.F = Interval{Min: 0.6, Max: 0.9}
	opts.Rand = rand.New(rand.NewSource(1))

	p, err := New(UniformBounds(-1, 1, 2), constantCost, &opts)
	require.NoError(t, err)

	for i := range p.curr {
		assert.GreaterOrEqual(t, p.curr[i].cr, 0.2)
		assert.Less(t, p.curr[i].cr, 0.4)
		assert.GreaterOrEqual(t, p.curr[i].f, 0.6)
		assert.Less(t, p.curr[i].f, 0.9)
		assert.False(t, p.curr[i].evaluated, "no cost evaluation at construction")
	}
}

// TestCountdownCycle: countdown starts at PopSize, decrements per Eval,
// and the evaluation after it hits zero advances the generation.
func TestCountdownCycle(t *testing.T) {
	const popSize = 4
	opts := DefaultOptions()
	opts.PopSize = popSize
	opts.Rand = rand.New(rand.NewSource(2))

	p, err := New(UniformBounds(-1, 1, 2), constantCost, &opts)
	require.NoError(t, err)
	require.Equal(t, popSize, p.countdown)

	for i := 1; i <= popSize; i++ {
		p.Eval()
		assert.Equal(t, popSize-i, p.countdown)
	}

	// Boundary crossing: reset to popSize, then the step's own decrement.
	p.Eval()
	assert.Equal(t, popSize-1, p.countdown)
	assert.Equal(t, popSize+1, p.evals)
}

// TestUpdateBest_TieSwaps: equal costs swap (non-strict <=). The swap is
// by ownership exchange, so the position buffers must change sides.
func TestUpdateBest_TieSwaps(t *testing.T) {
	opts := DefaultOptions()
	opts.PopSize = 3
	opts.Rand = rand.New(rand.NewSource(3))

	p, err := New(UniformBounds(-1, 1, 1), constantCost, &opts)
	require.NoError(t, err)

	p.curr[0].cost, p.curr[0].evaluated = 5.0, true
	p.best[0].cost, p.best[0].evaluated = 5.0, true
	currBuf := &p.curr[0].pos[0]
	bestBuf := &p.best[0].pos[0]

	p.updateBest()

	assert.Same(t, currBuf, &p.best[0].pos[0], "tie must move the current individual into best")
	assert.Same(t, bestBuf, &p.curr[0].pos[0])
}

// TestUpdateBest_WorseStays: a strictly worse current individual does not
// displace the personal best.
func TestUpdateBest_WorseStays(t *testing.T) {
	opts := DefaultOptions()
	opts.PopSize = 3
	opts.Rand = rand.New(rand.NewSource(4))

	p, err := New(UniformBounds(-1, 1, 1), constantCost, &opts)
	require.NoError(t, err)

	p.curr[0].cost, p.curr[0].evaluated = 7.0, true
	p.best[0].cost, p.best[0].evaluated = 5.0, true
	bestBuf := &p.best[0].pos[0]

	p.updateBest()

	assert.Same(t, bestBuf, &p.best[0].pos[0], "worse individual must not be selected")
	assert.Equal(t, 5.0, p.best[0].cost)
}

// TestUpdateBest_FillsUnevaluatedBest: an empty personal best always
// adopts the current individual, whatever its cost.
func TestUpdateBest_FillsUnevaluatedBest(t *testing.T) {
	opts := DefaultOptions()
	opts.PopSize = 3
	opts.Rand = rand.New(rand.NewSource(5))

	p, err := New(UniformBounds(-1, 1, 1), constantCost, &opts)
	require.NoError(t, err)

	p.curr[1].cost, p.curr[1].evaluated = 99.0, true
	p.updateBest()

	assert.True(t, p.best[1].evaluated)
	assert.Equal(t, 99.0, p.best[1].cost)
}

// TestUpdatePositions_ForcedMutation: with cr pinned to 0 and a single
// dimension, the forced-mutation rule must still rewrite every position —
// the crossover coin flip never fires, the forced dimension does.
//
// Personal bests are pinned to {1, 10, 100, 1000}: no DE combination
// b3 + 0.5·(b1−b2) of pairwise-distinct parents equals any parent value,
// so a surviving parent value would prove the copy branch was taken.
func TestUpdatePositions_ForcedMutation(t *testing.T) {
	parents := []float64{1, 10, 100, 1000}

	opts := DefaultOptions()
	opts.PopSize = len(parents)
	opts.CR = Interval{Min: 0, Max: 0}
	opts.CRChangeProb = 0
	opts.F = Interval{Min: 0.5, Max: 0.5}
	opts.FChangeProb = 0
	opts.Rand = rand.New(rand.NewSource(6))

	p, err := New(UniformBounds(-10, 10, 1), constantCost, &opts)
	require.NoError(t, err)

	for i := range p.best {
		p.best[i].pos[0] = parents[i]
		p.best[i].cost, p.best[i].evaluated = float64(i), true
		p.best[i].cr, p.best[i].f = 0, 0.5
	}

	p.updatePositions()

	for i := range p.curr {
		got := p.curr[i].pos[0]
		for _, parent := range parents {
			assert.NotEqual(t, parent, got, "slot %d kept a parent value — no mutation", i)
		}
		assert.False(t, p.curr[i].evaluated, "reproduction must clear costs")
	}
}

// TestUpdatePositions_InheritsControlParameters: with redraw probabilities
// at 0, children take cr and f from their personal best verbatim.
func TestUpdatePositions_InheritsControlParameters(t *testing.T) {
	opts := DefaultOptions()
	opts.PopSize = 4
	opts.CRChangeProb = 0
	opts.FChangeProb = 0
	opts.Rand = rand.New(rand.NewSource(8))

	p, err := New(UniformBounds(-1, 1, 2), constantCost, &opts)
	require.NoError(t, err)

	for i := range p.best {
		p.best[i].cr = 0.25 + float64(i)/100
		p.best[i].f = 0.5 + float64(i)/100
		p.best[i].evaluated = true
	}

	p.updatePositions()

	for i := range p.curr {
		assert.Equal(t, p.best[i].cr, p.curr[i].cr)
		assert.Equal(t, p.best[i].f, p.curr[i].f)
	}
}
