package benchfn

import (
	"math"

	"github.com/katalvlaran/diffevo/de"
)

// Func is one benchmark objective with its canonical search box and known
// global optimum.
type Func struct {
	// Name identifies the function in test and benchmark output.
	Name string

	// Eval computes the cost of v. Lower is better.
	Eval func(v []float64) float64

	// Min, Max delimit the canonical per-dimension search interval.
	Min, Max float64

	// OptimumPos is the coordinate of the global minimizer, identical in
	// every dimension.
	OptimumPos float64

	// OptimumCost returns the cost at the global minimizer for the given
	// dimensionality.
	OptimumCost func(dim int) float64
}

// Bounds returns the canonical search box replicated over dim dimensions,
// ready to seed an optimizer.
func (f Func) Bounds(dim int) []de.Interval {
	return de.UniformBounds(f.Min, f.Max, dim)
}

// Optimum returns the global minimizer as a dim-dimensional position.
func (f Func) Optimum(dim int) []float64 {
	pos := make([]float64, dim)
	for d := range pos {
		pos[d] = f.OptimumPos
	}

	return pos
}

// All lists every benchmark function in this package.
var All = []Func{Sphere, Rastrigin, Rosenbrock, Ackley, Griewank, StyblinskiTang, Schwefel}

// Sphere is the simplest unimodal bowl: sum of squares. Minimum 0 at the
// origin.
var Sphere = Func{
	Name: "Sphere",
	Eval: func(v []float64) float64 {
		sum := 0.0
		for _, x := range v {
			sum += x * x
		}

		return sum
	},
	Min: -10, Max: 10,
	OptimumPos:  0,
	OptimumCost: func(int) float64 { return 0 },
}

// Rastrigin is highly multimodal with a regular grid of local minima.
// Minimum 0 at the origin.
var Rastrigin = Func{
	Name: "Rastrigin",
	Eval: func(v []float64) float64 {
		sum := 10.0 * float64(len(v))
		for _, x := range v {
			sum += x*x - 10.0*math.Cos(2.0*math.Pi*x)
		}

		return sum
	},
	Min: -5.12, Max: 5.12,
	OptimumPos:  0,
	OptimumCost: func(int) float64 { return 0 },
}

// Rosenbrock is the classic banana valley; easy to enter, hard to follow.
// Minimum 0 at (1, …, 1). Needs dim >= 2.
var Rosenbrock = Func{
	Name: "Rosenbrock",
	Eval: func(v []float64) float64 {
		sum := 0.0
		for i := 0; i+1 < len(v); i++ {
			a := v[i+1] - v[i]*v[i]
			b := 1.0 - v[i]
			sum += 100.0*a*a + b*b
		}

		return sum
	},
	Min: -5, Max: 10,
	OptimumPos:  1,
	OptimumCost: func(int) float64 { return 0 },
}

// Ackley combines a flat outer region with a deep central funnel.
// Minimum 0 at the origin.
var Ackley = Func{
	Name: "Ackley",
	Eval: func(v []float64) float64 {
		n := float64(len(v))
		sq, cs := 0.0, 0.0
		for _, x := range v {
			sq += x * x
			cs += math.Cos(2.0 * math.Pi * x)
		}

		return -20.0*math.Exp(-0.2*math.Sqrt(sq/n)) - math.Exp(cs/n) + 20.0 + math.E
	},
	Min: -32.768, Max: 32.768,
	OptimumPos:  0,
	OptimumCost: func(int) float64 { return 0 },
}

// Griewank has widespread local minima over a huge domain.
// Minimum 0 at the origin.
var Griewank = Func{
	Name: "Griewank",
	Eval: func(v []float64) float64 {
		sum, prod := 0.0, 1.0
		for i, x := range v {
			sum += x * x
			prod *= math.Cos(x / math.Sqrt(float64(i+1)))
		}

		return 1.0 + sum/4000.0 - prod
	},
	Min: -600, Max: 600,
	OptimumPos:  0,
	OptimumCost: func(int) float64 { return 0 },
}

// StyblinskiTang has its optimum off the origin and off the bound box
// center, which catches center-biased samplers. Minimum ≈ −39.16617·dim
// at x_d ≈ −2.903534.
var StyblinskiTang = Func{
	Name: "StyblinskiTang",
	Eval: func(v []float64) float64 {
		sum := 0.0
		for _, x := range v {
			x2 := x * x
			sum += x2*x2 - 16.0*x2 + 5.0*x
		}

		return sum / 2.0
	},
	Min: -5, Max: 5,
	OptimumPos:  -2.903534,
	OptimumCost: func(dim int) float64 { return -39.16616570377142 * float64(dim) },
}

// Schwefel places its optimum near a corner of the domain, far from the
// second-best local minimum. Minimum ≈ 0 at x_d ≈ 420.9687.
var Schwefel = Func{
	Name: "Schwefel",
	Eval: func(v []float64) float64 {
		sum := 418.9829 * float64(len(v))
		for _, x := range v {
			sum -= x * math.Sin(math.Sqrt(math.Abs(x)))
		}

		return sum
	},
	Min: -500, Max: 500,
	OptimumPos:  420.9687,
	OptimumCost: func(int) float64 { return 0 },
}
