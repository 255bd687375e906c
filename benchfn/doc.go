// Package benchfn provides canonical benchmark objectives for exercising
// black-box optimizers, drawn from the standard test-function literature
// (see Wikipedia, "Test functions for optimization").
//
// Each Func bundles the objective itself with its canonical per-dimension
// search interval and its known global optimum, so tests and examples can
// seed a search box and assert on convergence without hard-coding
// constants:
//
//	f := benchfn.Rastrigin
//	pop, _ := de.New(f.Bounds(30), f.Eval, nil)
//
// All functions generalize to arbitrary dimensionality (Rosenbrock needs
// dim >= 2) and follow the minimization convention: lower is better, the
// global optimum is the lowest reachable cost.
package benchfn
