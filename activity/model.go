// This file declares the Model contract, the Result it produces, and the
// sentinel errors of the package.
//
// Errors:
//
//	ErrNilState          - Evaluate received a nil phase state.
//	ErrNoSolvent         - aqueous model applied to a phase without solvent.
//	ErrDimensionMismatch - names, charges and amounts lengths differ.
//	ErrBadConditions     - non-positive or non-finite temperature/pressure.
//	ErrBadAmount         - negative or non-finite species amount.
//	ErrZeroTotalAmount   - every species amount is zero.
//	ErrBadSolventIndex   - solvent index outside the species range.
//	ErrZeroSolventAmount - designated solvent has zero amount.
//	ErrBadWaterProps     - water density or dielectric constant unusable.
package activity

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for phase-state construction and model evaluation.
var (
	// ErrNilState indicates Evaluate was called with a nil PhaseState.
	ErrNilState = errors.New("activity: nil phase state")

	// ErrNoSolvent indicates an aqueous model was applied to a phase that has
	// no designated solvent.
	ErrNoSolvent = errors.New("activity: model requires a phase with a solvent")

	// ErrDimensionMismatch indicates inconsistent slice lengths.
	ErrDimensionMismatch = errors.New("activity: dimension mismatch")

	// ErrBadConditions indicates a non-positive or non-finite T or P.
	ErrBadConditions = errors.New("activity: temperature and pressure must be positive and finite")

	// ErrBadAmount indicates a negative or non-finite species amount.
	ErrBadAmount = errors.New("activity: species amounts must be non-negative and finite")

	// ErrZeroTotalAmount indicates a phase with no material at all.
	ErrZeroTotalAmount = errors.New("activity: total species amount is zero")

	// ErrBadSolventIndex indicates a solvent index outside the species range.
	ErrBadSolventIndex = errors.New("activity: solvent index out of range")

	// ErrZeroSolventAmount indicates a designated solvent with zero amount,
	// which leaves molalities undefined.
	ErrZeroSolventAmount = errors.New("activity: solvent amount is zero")

	// ErrBadWaterProps indicates unusable water density or dielectric constant.
	ErrBadWaterProps = errors.New("activity: water properties must be positive and finite")
)

// Result carries the outcome of one model evaluation over one phase.
// All slices have one entry per phase species, in phase order.
type Result struct {
	// LnActivities is ln a_i. A species with zero concentration legitimately
	// evaluates to -Inf; consumers decide how to react.
	LnActivities []float64

	// LnActivityCoefficients is ln γ_i on the species' concentration scale.
	LnActivityCoefficients []float64

	// LnActivityConstants ties the concentration scale to the standard state:
	// ln(55.508472) for aqueous solutes, zero for the solvent and for
	// molar-fraction phases.
	LnActivityConstants []float64

	// DLnActivities optionally holds ∂ln a_i/∂n_j (phase-local indices).
	// Models that do not propagate composition derivatives leave it nil.
	DLnActivities *mat.Dense
}

// Model computes activities for one phase. Implementations must be
// stateless with respect to Evaluate: the same PhaseState always produces
// the same Result, and concurrent calls on distinct states are safe.
//
// Implementations never substitute defaults for degenerate input: a
// non-finite outcome is reported as-is (or as an error), so the caller can
// fail loudly instead of converging to nonsense.
type Model interface {
	Evaluate(s *PhaseState) (Result, error)
}

// newResult allocates a Result with n entries per slice and no derivatives.
func newResult(n int) Result {
	return Result{
		LnActivities:           make([]float64, n),
		LnActivityCoefficients: make([]float64, n),
		LnActivityConstants:    make([]float64, n),
	}
}
