package equilibrium

import "github.com/gibbslab/gibbs/optimum"

// Result reports one equilibrium solve: the engine diagnostics (promoted
// from optimum.Result: Converged, Status, Iterations, Evaluations, the
// three residuals and Time) plus the final interior-point state.
//
// Passing Optimum as Options.Warm of a later solve on a nearby problem
// warm-starts it; the vectors are owned by the Result and never reused by
// the solver.
type Result struct {
	optimum.Result

	// Optimum is the final primal-dual iterate over the equilibrium
	// species, in partition order.
	Optimum optimum.State
}
