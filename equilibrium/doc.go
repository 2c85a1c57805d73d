// Package equilibrium computes multiphase chemical equilibrium by Gibbs
// free-energy minimization at fixed temperature and pressure.
//
// The packages underneath supply the parts: core the species catalog,
// partition and state, activity the per-phase activity models, optimum the
// interior-point engine. This package wires them together: it assembles
//
//	minimize  G(n)/RT = Σ nᵢ·(μ°ᵢ/RT + ln aᵢ)   over the equilibrium species
//	subject to  A·n = b,  n ≥ 0
//
// where A is the partition's reduced formula matrix (element rows plus a
// charge row) and b the element targets of the Problem, and hands the
// program to optimum.Solve.
//
// Typical use:
//
//	solver, err := equilibrium.NewSolver(sys,
//	    equilibrium.WithActivityModel("Aqueous", activity.NewDebyeHuckel()),
//	)
//	problem := equilibrium.NewProblem(sys)
//	_ = problem.SetElementAmount("Na", 0.1)
//	_ = problem.SetElementAmount("Cl", 0.1)
//	res, err := solver.Solve(problem, state)
//
// or, for one-shot calculations, the package-level Equilibrate wrappers,
// which build a throwaway solver with default models and partition.
//
// Outcomes follow the optimum convention: malformed input and non-finite
// model evaluations return Go errors with the state untouched, while plain
// non-convergence (iteration limit, singular system, infeasible targets)
// comes back as a Result with Converged false and the state left at the
// last iterate. Callers must check both.
//
// A Solver instance is sequential: it reuses internal evaluation buffers
// across iterations. Run concurrent calculations on distinct Solver and
// core.State values; the System, Partition and models may be shared.
package equilibrium
