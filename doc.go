// Package diffevo is a self-adaptive Differential Evolution (DE) global
// optimizer — simple, deterministic and dependency-light black-box
// minimization over real vectors.
//
// 🚀 What is diffevo?
//
//	A pure-Go library implementing DE/rand/1/bin with self-adapting
//	control parameters:
//		• Population engine: parallel current/personal-best arrays,
//		  swap-based selection, binomial crossover with a forced
//		  mutation dimension
//		• Self-adaptation: per-individual crossover rate (cr) and
//		  differential weight (f), evolved alongside positions
//		• Incremental protocol: exactly one cost evaluation per step,
//		  so any stopping policy (budget, threshold, wall clock)
//		  lives in caller code
//		• Determinism: explicit seeded RNG, same seed ⇒ same run
//
// ✨ Why choose diffevo?
//
//   - Gradient-free – only a cost function is required
//   - Rock-solid guarantees – fixed draw order, reproducible trajectories
//   - Pure Go – no cgo, minimal deps
//   - Composable – iterate best costs with a plain range-over-func loop
//
// Everything is organized under two subpackages:
//
//	de/      — the optimizer: Population, Options, Eval/Best/Iter
//	benchfn/ — canonical benchmark objectives (Sphere, Rastrigin, …)
//
// Quick sketch:
//
//	pop, _ := de.New(de.UniformBounds(-10, 10, 5), benchfn.Sphere.Eval, nil)
//	for cost := range pop.Iter() {
//	    if pop.NumCostEvaluations() >= 10000 || cost < 1e-6 {
//	        break
//	    }
//	}
//	cost, pos, _ := pop.Best()
//
// Dive into examples/ for runnable scenarios and de/doc.go for the full
// algorithm outline.
//
//	go get github.com/katalvlaran/diffevo/de
package diffevo
