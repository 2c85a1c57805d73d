package equilibrium

import "github.com/gibbslab/gibbs/core"

// Equilibrate computes the equilibrium state of st under problem with a
// throwaway solver: default partition (every species in equilibrium),
// default activity models, zero standard potentials, default options.
//
// For repeated solves build a Solver once instead; it reuses its
// evaluation buffers and lets models and partition be configured.
func Equilibrate(problem *Problem, st *core.State) (Result, error) {
	s, err := oneShot(problem)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(problem, st)
}

// EquilibrateWithOptions is Equilibrate with explicit options.
func EquilibrateWithOptions(problem *Problem, st *core.State, opts Options) (Result, error) {
	s, err := oneShot(problem)
	if err != nil {
		return Result{}, err
	}

	return s.SolveWithOptions(problem, st, opts)
}

// EquilibrateRestricted is Equilibrate with per-solve species restrictions
// and explicit options.
func EquilibrateRestricted(problem *Problem, st *core.State, r *Restrictions, opts Options) (Result, error) {
	s, err := oneShot(problem)
	if err != nil {
		return Result{}, err
	}

	return s.SolveRestricted(problem, st, r, opts)
}

// oneShot builds the default solver for the problem's system.
func oneShot(problem *Problem) (*Solver, error) {
	if problem == nil {
		return nil, ErrNilProblem
	}

	return NewSolver(problem.sys)
}
