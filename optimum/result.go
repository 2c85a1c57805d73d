// SPDX-License-Identifier: MIT

package optimum

import (
	"fmt"
	"time"
)

// Status classifies the outcome of a solve. The zero value is Infeasible
// so that aborted solves never read as converged.
type Status int

const (
	// Infeasible: the constraints cannot be met within the bounds; also
	// the zero value, reported when a solve produced no usable solution.
	Infeasible Status = iota

	// IterationLimit: the iteration budget ran out before the tolerances
	// were met.
	IterationLimit

	// SingularSystem: the Newton system stayed singular through every
	// regularization retry.
	SingularSystem

	// Converged: all three tolerances were met.
	Converged
)

// String returns the status name for diagnostics.
func (s Status) String() string {
	switch s {
	case Infeasible:
		return "infeasible"
	case IterationLimit:
		return "iteration limit"
	case SingularSystem:
		return "singular system"
	case Converged:
		return "converged"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result reports the diagnostics of one solve. A false Converged with a
// nil Go error is a legitimate outcome (the iteration gave up); inspect
// Status and the residuals to see why.
type Result struct {
	// Converged is true exactly when Status is Converged.
	Converged bool

	// Status classifies the outcome.
	Status Status

	// Iterations is the number of Newton steps taken; Evaluations the
	// number of objective callbacks.
	Iterations  int
	Evaluations int

	// ErrorFeasibility is ‖A·x − b‖∞, ErrorStationarity ‖∇f − Aᵀy − z‖∞,
	// ErrorComplementarity max_i (xᵢ−lᵢ)·zᵢ, all at the final iterate.
	ErrorFeasibility     float64
	ErrorStationarity    float64
	ErrorComplementarity float64

	// Time is the wall-clock duration of the solve.
	Time time.Duration
}
