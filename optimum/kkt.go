// SPDX-License-Identifier: MIT

// Package optimum: reduced Newton saddle-point system.
// This file owns the assembly, dense LU factorization and regularization
// retries of
//
//	[ H_ff + diag(zᵢ/(xᵢ−lᵢ)) + δI   A_fᵀ ] [Δx]   [r1]
//	[ A_f                            −δI  ] [w ] = [r2]
//
// over the nf free variables and m equality constraints, with w = −Δy.
// δ = 0 on the first attempt; a singular or non-finite factorization is
// retried with escalating diagonal shifts before the iteration reports
// SingularSystem.

package optimum

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Regularization schedule: retry k (1-based) shifts the system by
// δ = regularizationBase · regularizationGrowth^(k−1).
const (
	regularizationBase   = 1e-10
	regularizationGrowth = 100.0
)

// newtonSystem holds the scratch storage of one reduced system, reused
// across iterations to keep the per-step allocations flat.
type newtonSystem struct {
	nf, m int
	sys   *mat.Dense
	rhs   *mat.VecDense
	sol   *mat.VecDense
}

func newNewtonSystem(nf, m int) *newtonSystem {
	dim := nf + m

	return &newtonSystem{
		nf:  nf,
		m:   m,
		sys: mat.NewDense(dim, dim, nil),
		rhs: mat.NewVecDense(dim, nil),
		sol: mat.NewVecDense(dim, nil),
	}
}

// assemble fills the system matrix and right-hand side. free maps the nf
// local indices to problem indices for Hessian lookups; barrier holds
// zᵢ/(xᵢ−lᵢ) per free variable; af is the m×nf reduced constraint matrix.
func (ns *newtonSystem) assemble(hess Hessian, free []int, barrier []float64, af *mat.Dense, r1, r2 []float64, delta float64) {
	ns.sys.Zero()

	switch {
	case hess.Dense != nil:
		for i, gi := range free {
			for j, gj := range free {
				ns.sys.Set(i, j, hess.Dense.At(gi, gj))
			}
		}
	case hess.Diagonal != nil:
		for i, gi := range free {
			ns.sys.Set(i, i, hess.Diagonal[gi])
		}
	}
	for i := 0; i < ns.nf; i++ {
		ns.sys.Set(i, i, ns.sys.At(i, i)+barrier[i]+delta)
	}

	for r := 0; r < ns.m; r++ {
		for j := 0; j < ns.nf; j++ {
			v := af.At(r, j)
			ns.sys.Set(ns.nf+r, j, v)
			ns.sys.Set(j, ns.nf+r, v)
		}
		ns.sys.Set(ns.nf+r, ns.nf+r, -delta)
	}

	for i, v := range r1 {
		ns.rhs.SetVec(i, v)
	}
	for r, v := range r2 {
		ns.rhs.SetVec(ns.nf+r, v)
	}
}

// factorAndSolve runs a dense LU on the assembled system, writing Δx and w
// on success. It reports false for singular or ill-conditioned
// factorizations and for non-finite solutions.
func (ns *newtonSystem) factorAndSolve(dx, w []float64) bool {
	var lu mat.LU
	lu.Factorize(ns.sys)
	if err := lu.SolveVecTo(ns.sol, false, ns.rhs); err != nil {
		return false
	}

	for i := 0; i < ns.nf; i++ {
		v := ns.sol.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		dx[i] = v
	}
	for r := 0; r < ns.m; r++ {
		v := ns.sol.AtVec(ns.nf + r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		w[r] = v
	}

	return true
}

// solve attempts the unshifted system first and retries with escalating
// diagonal regularization, logging each shift. It reports false once the
// retry budget is exhausted.
func (ns *newtonSystem) solve(hess Hessian, free []int, barrier []float64, af *mat.Dense, r1, r2, dx, w []float64, opts *Options) bool {
	ns.assemble(hess, free, barrier, af, r1, r2, 0)
	if ns.factorAndSolve(dx, w) {
		return true
	}

	delta := regularizationBase
	for retry := 1; retry <= opts.MaxRegularizationRetries; retry++ {
		opts.Logger.V(1).Info("regularizing newton system", "retry", retry, "delta", delta)
		ns.assemble(hess, free, barrier, af, r1, r2, delta)
		if ns.factorAndSolve(dx, w) {
			return true
		}
		delta *= regularizationGrowth
	}

	return false
}
