// SPDX-License-Identifier: MIT

// Package optimum solves smooth nonlinear programs with linear equality
// constraints and lower-bounded variables:
//
//	minimize f(x)   subject to   A·x = b,  x ≥ l
//
// by a primal-dual interior-point Newton method. The package knows nothing
// about chemistry: callers supply the objective through a single callback
// returning value, gradient and a Hessian approximation, and read the
// solution back from a State{X, Y, Z} triple of primal variables, equality
// multipliers and bound multipliers.
//
// The package provides:
//
//   - Problem — objective callback plus the constraint data (A, b, bounds).
//     Upper bounds are supported only as pins: setting uᵢ = lᵢ freezes the
//     variable and eliminates it from the Newton system.
//   - State — seedable primal-dual iterate; pass the previous solution back
//     in to warm-start the next solve.
//   - Options/DefaultOptions — iteration budget, the three convergence
//     tolerances, barrier schedule, step rule and diagnostics logger.
//   - Solve — the engine; returns Result diagnostics and reserves Go errors
//     for broken input and non-finite evaluations, never for plain
//     non-convergence.
//
// A Solve call is sequential; run concurrent solves on distinct Problem
// and State values.
package optimum
