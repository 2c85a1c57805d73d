// Package gibbs computes multiphase chemical equilibrium: the species
// amounts minimizing total Gibbs free energy at fixed temperature and
// pressure, subject to element and charge conservation and non-negativity.
//
// The module is organized under four subpackages:
//
//	core/        — immutable chemical catalog (elements, species, phases,
//	               formula matrix), mutable chemical state, and the
//	               equilibrium/kinetic/inert partition
//	activity/    — activity-model contract, per-phase mixture state, ideal
//	               and Debye–Hückel models
//	optimum/     — general primal-dual interior-point Newton engine for
//	               minimize f(x) s.t. A·x = b, x ≥ l
//	equilibrium/ — the orchestrator: problems, restrictions, options,
//	               results, and the Gibbs objective wiring it all together
//
// Start at package equilibrium; the other packages are its building blocks
// and stand on their own for custom setups (own activity models, direct
// use of the optimizer, partitioned systems).
//
// Design points:
//
//   - One catalog, many calculations — core.System is immutable and
//     shareable; each calculation owns its core.State and solver.
//   - Injected thermodynamics — standard chemical potentials and water
//     properties enter as pure functions; the module parses no databases.
//   - Explicit outcomes — malformed input returns a Go error; a solve that
//     ran out of iterations returns a Result with Converged false. The two
//     never mix.
package gibbs
