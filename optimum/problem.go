// SPDX-License-Identifier: MIT

package optimum

import "gonum.org/v1/gonum/mat"

// Hessian carries a Hessian approximation in one of two forms. Exactly one
// field should be set; when both are, the dense form wins. A zero Hessian
// is legal and leaves the Newton system with the barrier curvature alone.
type Hessian struct {
	// Dense is the full n×n matrix ∂²f/∂xᵢ∂xⱼ.
	Dense *mat.Dense

	// Diagonal holds the n diagonal entries of a diagonal approximation.
	Diagonal []float64
}

// ObjectiveResult is one evaluation of the objective: value, gradient and
// Hessian approximation at the queried point.
type ObjectiveResult struct {
	Value    float64
	Gradient []float64
	Hessian  Hessian
}

// Objective evaluates f at x. The engine treats x as read-only and owns the
// returned slices until the next call; implementations may reuse buffers
// between calls but must not keep references to x.
type Objective func(x []float64) (ObjectiveResult, error)

// Problem is a nonlinear program
//
//	minimize f(x)   subject to   A·x = b,  l ≤ x
//
// with optional pins: an upper bound equal to the lower bound freezes the
// variable at that value and removes it from the Newton system. Strict
// upper bounds (uᵢ > lᵢ, finite) are rejected with ErrUpperBound.
type Problem struct {
	// Objective evaluates f, ∇f and the Hessian approximation.
	Objective Objective

	// A is the m×n equality-constraint matrix; nil means no equality
	// constraints (B must then be empty).
	A *mat.Dense

	// B is the m-vector of constraint targets.
	B []float64

	// Lower holds the variable lower bounds; nil means all zero.
	Lower []float64

	// Upper optionally pins variables: +Inf entries are free, entries equal
	// to the lower bound are fixed. Nil means all free.
	Upper []float64
}
