// This file defines the sentinel errors of the package. Lookup failures
// reuse the core sentinels (core.ErrSpeciesNotFound, core.ErrElementNotFound,
// core.ErrBadAmount), so callers match one error set across packages.
//
// Errors:
//
//	ErrNilSystem       - solver or problem built without a catalog.
//	ErrNilProblem      - Solve received a nil problem.
//	ErrNilState        - Solve received a nil chemical state.
//	ErrNilModel        - WithActivityModel received a nil model.
//	ErrNilPotentials   - WithStandardPotentials received a nil provider.
//	ErrSystemMismatch  - problem, state and solver refer to different catalogs.
//	ErrSpeciesNotFree  - a bound targets a species outside the equilibrium set.
//	ErrBadTarget       - element target negative or non-finite.
//	ErrBadOptions      - Epsilon or Hessian mode out of range.
//	ErrDimensionMismatch - potential provider returned the wrong length.
//	ErrNonFiniteValue  - a chemical potential evaluated to NaN or ±Inf.
package equilibrium

import (
	"errors"

	"github.com/gibbslab/gibbs/optimum"
)

// Sentinel errors for solver construction and problem assembly.
var (
	// ErrNilSystem indicates a nil *core.System.
	ErrNilSystem = errors.New("equilibrium: nil chemical system")

	// ErrNilProblem indicates a nil *Problem passed to a solve entry point.
	ErrNilProblem = errors.New("equilibrium: nil problem")

	// ErrNilState indicates a nil *core.State passed to a solve entry point.
	ErrNilState = errors.New("equilibrium: nil chemical state")

	// ErrNilModel indicates WithActivityModel was given a nil model.
	ErrNilModel = errors.New("equilibrium: nil activity model")

	// ErrNilPotentials indicates WithStandardPotentials was given nil.
	ErrNilPotentials = errors.New("equilibrium: nil standard-potential provider")

	// ErrSystemMismatch indicates the problem, the state or the partition
	// was built on a different System than the solver.
	ErrSystemMismatch = errors.New("equilibrium: problem, state and solver must share one system")

	// ErrSpeciesNotFree indicates a per-species bound or restriction names
	// a species the partition keeps out of the equilibrium set.
	ErrSpeciesNotFree = errors.New("equilibrium: species is not in the equilibrium set")

	// ErrBadTarget indicates an element target that is negative or
	// non-finite, or a non-finite charge target.
	ErrBadTarget = errors.New("equilibrium: element targets must be non-negative and finite")

	// ErrBadOptions is returned by Options.Validate for out-of-range
	// equilibrium-level settings. Optimum-level settings fail with
	// optimum.ErrBadOptions.
	ErrBadOptions = errors.New("equilibrium: invalid options")

	// ErrDimensionMismatch indicates a standard-potential vector whose
	// length does not cover every species of the system.
	ErrDimensionMismatch = errors.New("equilibrium: dimension mismatch")

	// ErrNonFiniteValue aborts a solve when a chemical potential evaluates
	// to NaN or ±Inf. It is optimum.ErrNonFiniteValue, re-exported so both
	// spellings match with errors.Is.
	ErrNonFiniteValue = optimum.ErrNonFiniteValue
)
