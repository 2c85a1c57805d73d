// SPDX-License-Identifier: MIT

// Package optimum: the primal-dual interior-point Newton engine.

package optimum

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Solve minimizes p.Objective subject to A·x = b and x ≥ l, starting from
// state and overwriting it with the final iterate whether or not the run
// converged. Validation failures and non-finite evaluations return a Go
// error and leave the state untouched; plain non-convergence does not.
//
// Algorithm outline:
//  1. Validate options, problem shape, bounds and the starting point; lift
//     entries sitting exactly on their bound strictly inside.
//  2. Eliminate pinned variables (upper == lower) and fold their fixed
//     contribution into the constraint targets.
//  3. Iterate: evaluate the objective, form the KKT residuals, test the
//     three tolerances, shrink the barrier geometrically (monotone, floored
//     at MuMin), solve the reduced Newton system (kkt.go), advance by the
//     fraction-to-the-boundary rule in the configured step mode.
//  4. Write the final iterate back, recovering the bound multipliers of
//     pinned variables from the dual residual.
//
// Complexity: O((nf+m)³) per iteration for the dense LU over nf free
// variables and m constraints.
func Solve(p Problem, state *State, opts Options) (Result, error) {
	start := time.Now()

	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if p.Objective == nil {
		return Result{}, ErrNilObjective
	}
	if state == nil {
		return Result{}, ErrNilState
	}

	// Stage 1 — shape checks.
	n := len(state.X)
	if n == 0 {
		return Result{}, fmt.Errorf("%w: empty primal vector", ErrDimensionMismatch)
	}
	var m int
	if p.A != nil {
		var cols int
		m, cols = p.A.Dims()
		if cols != n {
			return Result{}, fmt.Errorf("%w: constraint matrix is %dx%d for %d variables", ErrDimensionMismatch, m, cols, n)
		}
	}
	if len(p.B) != m {
		return Result{}, fmt.Errorf("%w: %d targets for %d constraints", ErrDimensionMismatch, len(p.B), m)
	}
	for r, v := range p.B {
		if !finite(v) {
			return Result{}, fmt.Errorf("%w: constraint target b[%d]=%v", ErrNonFiniteValue, r, v)
		}
	}

	// Stage 2 — bounds and pins.
	lower := make([]float64, n)
	if p.Lower != nil {
		if len(p.Lower) != n {
			return Result{}, fmt.Errorf("%w: %d lower bounds for %d variables", ErrDimensionMismatch, len(p.Lower), n)
		}
		copy(lower, p.Lower)
	}
	for i, v := range lower {
		if !finite(v) {
			return Result{}, fmt.Errorf("%w: lower[%d]=%v", ErrBadBounds, i, v)
		}
	}
	pinned := make([]bool, n)
	if p.Upper != nil {
		if len(p.Upper) != n {
			return Result{}, fmt.Errorf("%w: %d upper bounds for %d variables", ErrDimensionMismatch, len(p.Upper), n)
		}
		for i, u := range p.Upper {
			switch {
			case math.IsInf(u, +1):
			case u == lower[i]:
				pinned[i] = true
			case math.IsNaN(u):
				return Result{}, fmt.Errorf("%w: upper[%d] is NaN", ErrBadBounds, i)
			default:
				return Result{}, fmt.Errorf("%w: upper[%d]=%v is neither +Inf nor the lower bound %v", ErrUpperBound, i, u, lower[i])
			}
		}
	}

	free := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !pinned[i] {
			free = append(free, i)
		}
	}
	nf := len(free)

	// Stage 3 — starting point. Pins are forced onto their value; free
	// entries must sit at or above the bound, boundary entries are lifted
	// into the interior by the initial barrier.
	x := append([]float64(nil), state.X...)
	for i := range x {
		if pinned[i] {
			x[i] = lower[i]
			continue
		}
		if !finite(x[i]) || x[i] < lower[i] {
			return Result{}, fmt.Errorf("%w: x[%d]=%v outside [%v, +Inf)", ErrBoundViolation, i, x[i], lower[i])
		}
		if x[i] == lower[i] {
			x[i] = lower[i] + opts.Mu
		}
	}

	// Warm-start duals are adopted when usable, rebuilt when not.
	y := make([]float64, m)
	if len(state.Y) == m {
		usable := true
		for _, v := range state.Y {
			if !finite(v) {
				usable = false
				break
			}
		}
		if usable {
			copy(y, state.Y)
		}
	}
	z := make([]float64, n)
	warmZ := len(state.Z) == n
	for _, i := range free {
		if warmZ && state.Z[i] > 0 && !math.IsInf(state.Z[i], 0) {
			z[i] = state.Z[i]
			continue
		}
		z[i] = opts.Mu / (x[i] - lower[i])
	}

	// Stage 4 — reduced constraint matrix; pinned columns fold into the
	// effective targets.
	var af *mat.Dense
	beff := append([]float64(nil), p.B...)
	if m > 0 && nf > 0 {
		if nf == n {
			af = p.A
		} else {
			af = mat.NewDense(m, nf, nil)
			for r := 0; r < m; r++ {
				for j, gi := range free {
					af.Set(r, j, p.A.At(r, gi))
				}
			}
		}
	}
	if m > 0 {
		for i := 0; i < n; i++ {
			if pinned[i] && x[i] != 0 {
				for r := 0; r < m; r++ {
					beff[r] -= p.A.At(r, i) * x[i]
				}
			}
		}
	}

	ns := newNewtonSystem(nf, m)
	var (
		dx      = make([]float64, nf)
		w       = make([]float64, m)
		dz      = make([]float64, nf)
		barrier = make([]float64, nf)
		r1      = make([]float64, nf)
		r2      = make([]float64, m)
		aty     = make([]float64, nf)
	)

	// Stage 5 — iterate.
	log := opts.Logger
	mu := opts.Mu
	var (
		status                    Status
		it, evals                 int
		obj                       ObjectiveResult
		errFeas, errStat, errComp float64
	)
	for it = 0; ; it++ {
		var err error
		obj, err = p.Objective(x)
		evals++
		if err != nil {
			return Result{Iterations: it, Evaluations: evals, Time: time.Since(start)},
				fmt.Errorf("optimum: objective callback: %w", err)
		}
		if len(obj.Gradient) != n {
			return Result{Iterations: it, Evaluations: evals, Time: time.Since(start)},
				fmt.Errorf("%w: gradient length %d for %d variables", ErrDimensionMismatch, len(obj.Gradient), n)
		}
		if !finite(obj.Value) {
			return Result{Iterations: it, Evaluations: evals, Time: time.Since(start)},
				fmt.Errorf("%w: f(x)=%v at iteration %d", ErrNonFiniteValue, obj.Value, it)
		}
		for _, i := range free {
			if !finite(obj.Gradient[i]) {
				return Result{Iterations: it, Evaluations: evals, Time: time.Since(start)},
					fmt.Errorf("%w: gradient[%d]=%v at iteration %d", ErrNonFiniteValue, i, obj.Gradient[i], it)
			}
		}
		if h := obj.Hessian; h.Dense != nil {
			if hr, hc := h.Dense.Dims(); hr != n || hc != n {
				return Result{Iterations: it, Evaluations: evals, Time: time.Since(start)},
					fmt.Errorf("%w: hessian is %dx%d for %d variables", ErrDimensionMismatch, hr, hc, n)
			}
		} else if h.Diagonal != nil && len(h.Diagonal) != n {
			return Result{Iterations: it, Evaluations: evals, Time: time.Since(start)},
				fmt.Errorf("%w: hessian diagonal length %d for %d variables", ErrDimensionMismatch, len(h.Diagonal), n)
		}

		// KKT residuals over the free subspace.
		errFeas = 0
		for r := 0; r < m; r++ {
			s := -beff[r]
			for j, gi := range free {
				s += af.At(r, j) * x[gi]
			}
			if a := math.Abs(s); a > errFeas {
				errFeas = a
			}
			r2[r] = -s
		}
		errStat, errComp = 0, 0
		var gap float64
		for j, gi := range free {
			aty[j] = 0
			for r := 0; r < m; r++ {
				aty[j] += af.At(r, j) * y[r]
			}
			if a := math.Abs(obj.Gradient[gi] - aty[j] - z[gi]); a > errStat {
				errStat = a
			}
			comp := (x[gi] - lower[gi]) * z[gi]
			if comp > errComp {
				errComp = comp
			}
			gap += comp
		}

		log.V(1).Info("iteration",
			"it", it, "f", obj.Value, "mu", mu,
			"feasibility", errFeas, "stationarity", errStat, "complementarity", errComp)

		if errFeas < opts.TolFeasibility && errStat < opts.TolStationarity && errComp < opts.TolComplementarity {
			status = Converged
			break
		}
		if nf == 0 {
			// Every variable is pinned and the pinned point misses the
			// targets; no step can fix that.
			status = Infeasible
			break
		}
		if it >= opts.MaxIterations {
			status = IterationLimit
			break
		}

		// Barrier update: geometric centering on the duality gap, monotone
		// non-increasing, floored.
		if cand := opts.Sigma * gap / float64(nf); cand < mu {
			mu = cand
		}
		if mu < opts.MuMin {
			mu = opts.MuMin
		}

		// Newton step.
		for j, gi := range free {
			d := x[gi] - lower[gi]
			barrier[j] = z[gi] / d
			r1[j] = -obj.Gradient[gi] + aty[j] + mu/d
		}
		if !ns.solve(obj.Hessian, free, barrier, af, r1, r2, dx, w, &opts) {
			status = SingularSystem
			break
		}
		for j, gi := range free {
			d := x[gi] - lower[gi]
			dz[j] = mu/d - z[gi] - z[gi]*dx[j]/d
		}

		// Fraction-to-the-boundary step lengths.
		ax, az := 1.0, 1.0
		for j, gi := range free {
			if dx[j] < 0 {
				if a := -opts.Tau * (x[gi] - lower[gi]) / dx[j]; a < ax {
					ax = a
				}
			}
			if dz[j] < 0 {
				if a := -opts.Tau * z[gi] / dz[j]; a < az {
					az = a
				}
			}
		}

		switch opts.Step {
		case Aggressive:
			for j, gi := range free {
				x[gi] += ax * dx[j]
				z[gi] += az * dz[j]
			}
			for r := 0; r < m; r++ {
				y[r] -= w[r] // Δy = −w
			}
		default:
			a := math.Min(ax, az)
			for j, gi := range free {
				x[gi] += a * dx[j]
				z[gi] += a * dz[j]
			}
			for r := 0; r < m; r++ {
				y[r] -= a * w[r]
			}
		}
	}

	// Stage 6 — write back. Pinned variables recover their bound
	// multiplier from the dual residual at the final gradient.
	for i := 0; i < n; i++ {
		if !pinned[i] {
			continue
		}
		zi := obj.Gradient[i]
		for r := 0; r < m; r++ {
			zi -= p.A.At(r, i) * y[r]
		}
		z[i] = zi
	}
	state.X = x
	state.Y = y
	state.Z = z

	res := Result{
		Converged:            status == Converged,
		Status:               status,
		Iterations:           it,
		Evaluations:          evals,
		ErrorFeasibility:     errFeas,
		ErrorStationarity:    errStat,
		ErrorComplementarity: errComp,
		Time:                 time.Since(start),
	}
	log.V(1).Info("finished",
		"status", status.String(), "iterations", it, "evaluations", evals,
		"feasibility", errFeas, "stationarity", errStat, "complementarity", errComp)

	return res, nil
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
