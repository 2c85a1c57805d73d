// SPDX-License-Identifier: MIT
// Package optimum: sentinel error set.
// This file defines ONLY package-level sentinel errors. Solve returns these
// for broken input and for non-finite evaluations; tests match them with
// errors.Is. Non-convergence is NOT an error: it is reported through
// Result.Status so callers can distinguish "you called me wrong" from
// "the iteration gave up".

package optimum

import "errors"

var (
	// ErrNilObjective is returned when Problem.Objective is nil.
	ErrNilObjective = errors.New("optimum: nil objective callback")

	// ErrNilState is returned when Solve receives a nil State.
	ErrNilState = errors.New("optimum: nil state")

	// ErrDimensionMismatch indicates inconsistent sizes between the state
	// vector, the constraint matrix, the targets and the bounds.
	ErrDimensionMismatch = errors.New("optimum: dimension mismatch")

	// ErrBadOptions is returned by Options.Validate (and hence Solve) for
	// out-of-range tuning parameters.
	ErrBadOptions = errors.New("optimum: invalid options")

	// ErrBadBounds indicates a non-finite lower bound or a NaN upper bound.
	// Lower bounds must be finite: the barrier has no meaning without them.
	ErrBadBounds = errors.New("optimum: invalid variable bounds")

	// ErrUpperBound rejects strict upper bounds. The engine honors upper
	// bounds only as pins (uᵢ = lᵢ), which is how variables are fixed.
	ErrUpperBound = errors.New("optimum: strict upper bounds are not supported")

	// ErrBoundViolation indicates an initial primal entry below its lower
	// bound, or a non-finite one.
	ErrBoundViolation = errors.New("optimum: initial point violates lower bounds")

	// ErrNonFiniteValue aborts the solve when the objective callback yields
	// a NaN or infinite value or gradient entry. The engine never patches
	// such values; the caller must fix the model or the starting point.
	ErrNonFiniteValue = errors.New("optimum: non-finite objective evaluation")
)
