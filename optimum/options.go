// SPDX-License-Identifier: MIT

// Package optimum: solver configuration.
// This file defines the documented defaults (single source of truth), the
// StepMode enum, the Options struct consumed by Solve, and its validation.

package optimum

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
)

// DEFAULTS — single source of truth. DefaultOptions MUST mirror these.
const (
	// DefaultMaxIterations bounds the number of Newton steps.
	DefaultMaxIterations = 200

	// DefaultTolFeasibility is the tolerance on ‖A·x − b‖∞.
	DefaultTolFeasibility = 1e-8

	// DefaultTolStationarity is the tolerance on ‖∇f − Aᵀy − z‖∞.
	DefaultTolStationarity = 1e-8

	// DefaultTolComplementarity is the tolerance on max_i (xᵢ−lᵢ)·zᵢ.
	DefaultTolComplementarity = 1e-8

	// DefaultMu is the initial barrier parameter.
	DefaultMu = 1e-8

	// DefaultMuMin floors the barrier parameter; the schedule never drops
	// below it, keeping the Newton system bounded away from exact
	// complementarity.
	DefaultMuMin = 1e-20

	// DefaultSigma is the geometric centering factor of the barrier
	// schedule: the candidate for the next μ is σ·gap/n.
	DefaultSigma = 0.1

	// DefaultTau is the fraction-to-the-boundary coefficient: steps keep
	// x−l and z at least (1−τ) of their current distance from zero.
	DefaultTau = 0.99999

	// DefaultMaxRegularizationRetries bounds the diagonal-shift attempts
	// on a singular Newton system before giving up with SingularSystem.
	DefaultMaxRegularizationRetries = 5
)

// StepMode selects how the primal and dual step lengths combine.
//
//   - Conservative — one common step length min(αx, αz) for x, y and z.
//     Keeps the iterates tightly coupled; the safe default.
//   - Aggressive   — x steps by αx, z by αz, y by the full Newton step.
//     Faster on well-behaved problems, less forgiving near the boundary.
type StepMode int

const (
	// Conservative applies min(αx, αz) to all iterates.
	Conservative StepMode = iota

	// Aggressive steps x and z by their own lengths and y fully.
	Aggressive
)

// String returns the step-mode name for diagnostics.
func (m StepMode) String() string {
	switch m {
	case Conservative:
		return "conservative"
	case Aggressive:
		return "aggressive"
	default:
		return fmt.Sprintf("StepMode(%d)", int(m))
	}
}

// Options tunes Solve. Construct with DefaultOptions and override fields;
// the zero value is rejected by Validate.
type Options struct {
	// MaxIterations bounds the Newton steps taken before giving up with
	// Status IterationLimit.
	MaxIterations int `yaml:"max_iterations"`

	// TolFeasibility, TolStationarity and TolComplementarity are the three
	// convergence tolerances; all must hold simultaneously.
	TolFeasibility     float64 `yaml:"tol_feasibility"`
	TolStationarity    float64 `yaml:"tol_stationarity"`
	TolComplementarity float64 `yaml:"tol_complementarity"`

	// Mu is the initial barrier parameter; the schedule is monotone
	// non-increasing from it.
	Mu float64 `yaml:"mu"`

	// MuMin floors the barrier schedule.
	MuMin float64 `yaml:"mu_min"`

	// Sigma is the centering factor: the next barrier candidate is
	// σ·gap/n for the current duality gap.
	Sigma float64 `yaml:"sigma"`

	// Tau is the fraction-to-the-boundary coefficient, strictly inside
	// (0, 1).
	Tau float64 `yaml:"tau"`

	// Step selects the step-length rule.
	Step StepMode `yaml:"step"`

	// MaxRegularizationRetries bounds the escalating diagonal shifts tried
	// on a singular Newton system.
	MaxRegularizationRetries int `yaml:"max_regularization_retries"`

	// Logger receives V(1) per-iteration diagnostics. Defaults to
	// logr.Discard.
	Logger logr.Logger `yaml:"-"`
}

// DefaultOptions returns the documented defaults with a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxIterations:            DefaultMaxIterations,
		TolFeasibility:           DefaultTolFeasibility,
		TolStationarity:          DefaultTolStationarity,
		TolComplementarity:       DefaultTolComplementarity,
		Mu:                       DefaultMu,
		MuMin:                    DefaultMuMin,
		Sigma:                    DefaultSigma,
		Tau:                      DefaultTau,
		Step:                     Conservative,
		MaxRegularizationRetries: DefaultMaxRegularizationRetries,
		Logger:                   logr.Discard(),
	}
}

// Validate rejects out-of-range tuning parameters. Solve calls it first.
func (o Options) Validate() error {
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: MaxIterations must be at least 1, got %d", ErrBadOptions, o.MaxIterations)
	}
	for _, tol := range []struct {
		name  string
		value float64
	}{
		{"TolFeasibility", o.TolFeasibility},
		{"TolStationarity", o.TolStationarity},
		{"TolComplementarity", o.TolComplementarity},
	} {
		if !(tol.value > 0) || math.IsInf(tol.value, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrBadOptions, tol.name, tol.value)
		}
	}
	if !(o.Mu > 0) || math.IsInf(o.Mu, 0) {
		return fmt.Errorf("%w: Mu must be positive and finite, got %v", ErrBadOptions, o.Mu)
	}
	if !(o.MuMin > 0) || o.MuMin > o.Mu {
		return fmt.Errorf("%w: MuMin must satisfy 0 < MuMin <= Mu, got %v", ErrBadOptions, o.MuMin)
	}
	if !(o.Sigma > 0) || o.Sigma >= 1 {
		return fmt.Errorf("%w: Sigma must lie in (0, 1), got %v", ErrBadOptions, o.Sigma)
	}
	if !(o.Tau > 0) || o.Tau >= 1 {
		return fmt.Errorf("%w: Tau must lie in (0, 1), got %v", ErrBadOptions, o.Tau)
	}
	if o.Step != Conservative && o.Step != Aggressive {
		return fmt.Errorf("%w: unknown step mode %d", ErrBadOptions, int(o.Step))
	}
	if o.MaxRegularizationRetries < 0 {
		return fmt.Errorf("%w: MaxRegularizationRetries must be non-negative, got %d", ErrBadOptions, o.MaxRegularizationRetries)
	}

	return nil
}
