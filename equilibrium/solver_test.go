package equilibrium_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gibbslab/gibbs/activity"
	"github.com/gibbslab/gibbs/core"
	"github.com/gibbslab/gibbs/equilibrium"
	"github.com/gibbslab/gibbs/optimum"
)

// linearSystem is the two-element, three-species catalog with formula matrix
//
//	X:  [1 0 1]
//	Y:  [0 1 1]
//
// one neutral phase, no solvent. With unit targets the Gibbs minimum is
// n(X) = n(Y) = 1/√2 and n(XY) = 1-1/√2: the mole-fraction product rule
// x(X)·x(Y) = x(XY) combined with the two balances.
func linearSystem(t testing.TB) *core.System {
	t.Helper()

	sys, err := core.NewSystem(
		[]core.Element{{Name: "X", MolarMass: 0.010}, {Name: "Y", MolarMass: 0.020}},
		core.Phase{Name: "Solution", Species: []core.Species{
			{Name: "X", Elements: map[string]float64{"X": 1}},
			{Name: "Y", Elements: map[string]float64{"Y": 1}},
			{Name: "XY", Elements: map[string]float64{"X": 1, "Y": 1}},
		}},
	)
	require.NoError(t, err)

	return sys
}

// abSystem is one element E in two interconvertible species A and B.
// Standard potentials select the split; with μ°(B)/RT = -ln 2 the minimum
// sits at n(A) = 1/3, n(B) = 2/3.
func abSystem(t testing.TB) *core.System {
	t.Helper()

	sys, err := core.NewSystem(
		[]core.Element{{Name: "E", MolarMass: 0.012}},
		core.Phase{Name: "Solution", Species: []core.Species{
			{Name: "A", Elements: map[string]float64{"E": 1}},
			{Name: "B", Elements: map[string]float64{"E": 1}},
		}},
	)
	require.NoError(t, err)

	return sys
}

// ratioPotentials builds the provider selecting n(B)/n(A) = k at
// equilibrium: μ°(B) = -RT·ln k, everything else zero.
func ratioPotentials(sys *core.System, species string, k float64) equilibrium.StandardPotentials {
	i, _ := sys.SpeciesIndex(species)

	return func(temperature, _ float64) ([]float64, error) {
		pot := make([]float64, sys.NumSpecies())
		pot[i] = -equilibrium.GasConstant * temperature * math.Log(k)

		return pot, nil
	}
}

// brineSystem is the charged catalog: water plus a fully dissociated salt.
// The element and charge balances pin the composition completely, so the
// solve must reproduce the recipe exactly.
func brineSystem(t testing.TB) *core.System {
	t.Helper()

	sys, err := core.NewSystem(
		[]core.Element{
			{Name: "H", MolarMass: 0.001008},
			{Name: "O", MolarMass: 0.015999},
			{Name: "Na", MolarMass: 0.022990},
			{Name: "Cl", MolarMass: 0.035453},
		},
		core.Phase{Name: "Aqueous", Solvent: "H2O", Species: []core.Species{
			{Name: "H2O", Elements: map[string]float64{"H": 2, "O": 1}},
			{Name: "Na+", Elements: map[string]float64{"Na": 1}, Charge: +1},
			{Name: "Cl-", Elements: map[string]float64{"Cl": 1}, Charge: -1},
		}},
	)
	require.NoError(t, err)

	return sys
}

// dissociationSystem couples a neutral aqueous complex AB with its ions A+
// and B- over an inert solvent. With zero standard potentials the molal
// equilibrium condition is m(A+)·m(B-) = m(AB), so the split depends on the
// amount of frozen water through the molality scale.
func dissociationSystem(t testing.TB) *core.System {
	t.Helper()

	sys, err := core.NewSystem(
		[]core.Element{
			{Name: "X", MolarMass: 0.030},
			{Name: "Y", MolarMass: 0.035},
			{Name: "H", MolarMass: 0.001008},
			{Name: "O", MolarMass: 0.015999},
		},
		core.Phase{Name: "Aqueous", Solvent: "H2O", Species: []core.Species{
			{Name: "H2O", Elements: map[string]float64{"H": 2, "O": 1}},
			{Name: "AB(aq)", Elements: map[string]float64{"X": 1, "Y": 1}},
			{Name: "A+", Elements: map[string]float64{"X": 1}, Charge: +1},
			{Name: "B-", Elements: map[string]float64{"Y": 1}, Charge: -1},
		}},
	)
	require.NoError(t, err)

	return sys
}

// TestSolve_TwoElementBalance drives the three-species catalog to its
// analytic minimum from an infeasible uniform start and checks every
// converged-result property: mass balance, non-negativity, residuals.
func TestSolve_TwoElementBalance(t *testing.T) {
	sys := linearSystem(t)
	st := core.NewState(sys)
	require.NoError(t, st.SetSpeciesAmounts(0.25))

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.SetElementAmount("X", 1))
	require.NoError(t, problem.SetElementAmount("Y", 1))

	res, err := equilibrium.Equilibrate(problem, st)
	require.NoError(t, err)
	require.True(t, res.Converged, "status %v after %d iterations", res.Status, res.Iterations)
	assert.Equal(t, optimum.Converged, res.Status)
	assert.Positive(t, res.Iterations)
	assert.GreaterOrEqual(t, res.Evaluations, res.Iterations)

	sq := 1 / math.Sqrt2
	nx, _ := st.SpeciesAmountByName("X")
	ny, _ := st.SpeciesAmountByName("Y")
	nxy, _ := st.SpeciesAmountByName("XY")
	assert.InDelta(t, sq, nx, 1e-6, "n(X)")
	assert.InDelta(t, sq, ny, 1e-6, "n(Y)")
	assert.InDelta(t, 1-sq, nxy, 1e-6, "n(XY)")

	// Mass balance recomputed from the state, not from the solver.
	b := st.ElementAmounts()
	assert.InDelta(t, 1, b[0], 1e-8, "element X balance")
	assert.InDelta(t, 1, b[1], 1e-8, "element Y balance")

	for _, v := range st.Amounts() {
		assert.GreaterOrEqual(t, v, 0.0)
	}

	assert.Less(t, res.ErrorFeasibility, optimum.DefaultTolFeasibility)
	assert.Less(t, res.ErrorStationarity, optimum.DefaultTolStationarity)
	assert.Less(t, res.ErrorComplementarity, optimum.DefaultTolComplementarity)
	assert.Positive(t, res.Time)
	assert.Len(t, res.Optimum.X, 3)
}

// TestSolve_ChargeBalance equilibrates the brine catalog. The formula
// matrix carries linearly dependent rows (H = 2·O, charge = Na - Cl), so
// the Newton system is rank-deficient and the solve leans on the
// regularization path; the targets are consistent, so it must still
// converge and satisfy the charge row exactly to tolerance.
func TestSolve_ChargeBalance(t *testing.T) {
	sys := brineSystem(t)
	st := core.NewState(sys)
	require.NoError(t, st.SetAmounts([]float64{50, 0.05, 0.05}))

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.AddSpecies("H2O", 55.508472))
	require.NoError(t, problem.AddSpecies("Na+", 0.1))
	require.NoError(t, problem.AddSpecies("Cl-", 0.1))

	res, err := equilibrium.Equilibrate(problem, st)
	require.NoError(t, err)
	require.True(t, res.Converged, "status %v after %d iterations", res.Status, res.Iterations)

	nw, _ := st.SpeciesAmountByName("H2O")
	nna, _ := st.SpeciesAmountByName("Na+")
	ncl, _ := st.SpeciesAmountByName("Cl-")
	assert.InDelta(t, 55.508472, nw, 1e-5)
	assert.InDelta(t, 0.1, nna, 1e-6)
	assert.InDelta(t, 0.1, ncl, 1e-6)

	b := st.ElementAmounts()
	assert.InDelta(t, 0, b[sys.ChargeRow()], 1e-8, "charge balance")
}

// TestSolve_StandardPotentials verifies the provider steers the optimum:
// with μ°(B)/RT = -ln 2 the element splits 1/3 : 2/3 between A and B.
func TestSolve_StandardPotentials(t *testing.T) {
	sys := abSystem(t)
	st := core.NewState(sys)
	require.NoError(t, st.SetSpeciesAmounts(0.5))

	solver, err := equilibrium.NewSolver(sys,
		equilibrium.WithStandardPotentials(ratioPotentials(sys, "B", 2)),
	)
	require.NoError(t, err)

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.SetElementAmount("E", 1))

	res, err := solver.Solve(problem, st)
	require.NoError(t, err)
	require.True(t, res.Converged, "status %v", res.Status)

	na, _ := st.SpeciesAmountByName("A")
	nb, _ := st.SpeciesAmountByName("B")
	assert.InDelta(t, 1.0/3, na, 1e-6)
	assert.InDelta(t, 2.0/3, nb, 1e-6)
}

// TestSolve_WarmStart perturbs the targets by 1% and re-solves with the
// previous interior-point state: materially fewer iterations than the same
// perturbed problem from a uniform cold start.
func TestSolve_WarmStart(t *testing.T) {
	sys := linearSystem(t)
	solver, err := equilibrium.NewSolver(sys)
	require.NoError(t, err)

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.SetElementAmount("X", 1))
	require.NoError(t, problem.SetElementAmount("Y", 1))

	st := core.NewState(sys)
	require.NoError(t, st.SetSpeciesAmounts(0.25))
	first, err := solver.Solve(problem, st)
	require.NoError(t, err)
	require.True(t, first.Converged)

	require.NoError(t, problem.SetElementAmount("X", 1.01))

	warmOpts := equilibrium.DefaultOptions()
	warmOpts.Warm = &first.Optimum
	warm, err := solver.SolveWithOptions(problem, st, warmOpts)
	require.NoError(t, err)
	require.True(t, warm.Converged)

	cold := core.NewState(sys)
	require.NoError(t, cold.SetSpeciesAmounts(0.25))
	coldRes, err := solver.Solve(problem, cold)
	require.NoError(t, err)
	require.True(t, coldRes.Converged)

	assert.Less(t, warm.Iterations, coldRes.Iterations,
		"warm %d iterations vs cold %d", warm.Iterations, coldRes.Iterations)

	b := st.ElementAmounts()
	assert.InDelta(t, 1.01, b[0], 1e-8)
	assert.InDelta(t, 1, b[1], 1e-8)
}

// TestSolve_Idempotence re-solves an already converged state: the amounts
// must not move beyond tolerance.
func TestSolve_Idempotence(t *testing.T) {
	sys := linearSystem(t)
	st := core.NewState(sys)
	require.NoError(t, st.SetSpeciesAmounts(0.25))

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.SetElementAmount("X", 1))
	require.NoError(t, problem.SetElementAmount("Y", 1))

	solver, err := equilibrium.NewSolver(sys)
	require.NoError(t, err)

	first, err := solver.Solve(problem, st)
	require.NoError(t, err)
	require.True(t, first.Converged)
	before := st.Amounts()

	again, err := solver.Solve(problem, st)
	require.NoError(t, err)
	require.True(t, again.Converged)

	for i, v := range st.Amounts() {
		assert.InDelta(t, before[i], v, 1e-6, "species %d moved", i)
	}
}

// TestSolve_FrozenSolventScalesMolality freezes the solvent with an inert
// partition and solves AB(aq) = A+ + B- twice with different water
// amounts. The molal equilibrium condition m(A)·m(B) = m(AB) turns into
// t² = (0.1-t)·kg(water), so halving the water must shift the split —
// proof that activities see the frozen composition.
func TestSolve_FrozenSolventScalesMolality(t *testing.T) {
	sys := dissociationSystem(t)
	part, err := core.NewPartition(sys, core.WithInertSpecies("H2O"))
	require.NoError(t, err)

	solver, err := equilibrium.NewSolver(sys, equilibrium.WithPartition(part))
	require.NoError(t, err)

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.SetElementAmount("X", 0.1))
	require.NoError(t, problem.SetElementAmount("Y", 0.1))

	run := func(waterMol float64) (ab, a, b float64) {
		st := core.NewState(sys)
		require.NoError(t, st.SetSpeciesAmountByName("H2O", waterMol))
		require.NoError(t, st.SetSpeciesAmountByName("AB(aq)", 0.05))
		require.NoError(t, st.SetSpeciesAmountByName("A+", 0.02))
		require.NoError(t, st.SetSpeciesAmountByName("B-", 0.02))

		res, err := solver.Solve(problem, st)
		require.NoError(t, err)
		require.True(t, res.Converged, "status %v", res.Status)

		nw, _ := st.SpeciesAmountByName("H2O")
		assert.Equal(t, waterMol, nw, "frozen solvent must not move")

		ab, _ = st.SpeciesAmountByName("AB(aq)")
		a, _ = st.SpeciesAmountByName("A+")
		b, _ = st.SpeciesAmountByName("B-")

		return ab, a, b
	}

	// One kilogram of water: t² + t - 0.1 = 0.
	ab1, a1, b1 := run(1 / activity.WaterMolarMass)
	t1 := (math.Sqrt(1.4) - 1) / 2
	assert.InDelta(t, t1, a1, 1e-5)
	assert.InDelta(t, t1, b1, 1e-5)
	assert.InDelta(t, 0.1-t1, ab1, 1e-5)

	// Half a kilogram: t² + 0.5·t - 0.05 = 0. Less solvent, higher
	// molalities, more association.
	ab2, a2, _ := run(0.5 / activity.WaterMolarMass)
	t2 := (math.Sqrt(0.45) - 0.5) / 2
	assert.InDelta(t, t2, a2, 1e-5)
	assert.InDelta(t, 0.1-t2, ab2, 1e-5)
	assert.Greater(t, ab2, ab1, "less water must associate more AB")
}

// TestSolve_DebyeHuckel swaps the aqueous model for Debye–Hückel on the
// fully pinned brine: activity coefficients may not disturb a composition
// the balances determine uniquely.
func TestSolve_DebyeHuckel(t *testing.T) {
	sys := brineSystem(t)
	solver, err := equilibrium.NewSolver(sys,
		equilibrium.WithActivityModel("Aqueous", activity.NewDebyeHuckel()),
	)
	require.NoError(t, err)

	st := core.NewState(sys)
	require.NoError(t, st.SetAmounts([]float64{50, 0.2, 0.2}))

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.AddSpecies("H2O", 55.508472))
	require.NoError(t, problem.AddSpecies("Na+", 0.1))
	require.NoError(t, problem.AddSpecies("Cl-", 0.1))

	res, err := solver.Solve(problem, st)
	require.NoError(t, err)
	require.True(t, res.Converged, "status %v", res.Status)

	nna, _ := st.SpeciesAmountByName("Na+")
	assert.InDelta(t, 0.1, nna, 1e-6)
}

// TestSolve_HessianExact runs both curvature modes to the same optimum:
// the ideal model supplies exact ∂ln a/∂n blocks, Debye–Hückel reports
// none and must fall back to the diagonal.
func TestSolve_HessianExact(t *testing.T) {
	t.Run("ideal derivatives", func(t *testing.T) {
		sys := linearSystem(t)
		st := core.NewState(sys)
		require.NoError(t, st.SetSpeciesAmounts(0.25))

		problem := equilibrium.NewProblem(sys)
		require.NoError(t, problem.SetElementAmount("X", 1))
		require.NoError(t, problem.SetElementAmount("Y", 1))

		opts := equilibrium.DefaultOptions()
		opts.Hessian = equilibrium.HessianExact
		res, err := equilibrium.EquilibrateWithOptions(problem, st, opts)
		require.NoError(t, err)
		require.True(t, res.Converged, "status %v", res.Status)

		nx, _ := st.SpeciesAmountByName("X")
		assert.InDelta(t, 1/math.Sqrt2, nx, 1e-6)
	})

	t.Run("diagonal fallback", func(t *testing.T) {
		sys := brineSystem(t)
		solver, err := equilibrium.NewSolver(sys,
			equilibrium.WithActivityModel("Aqueous", activity.NewDebyeHuckel()),
		)
		require.NoError(t, err)

		st := core.NewState(sys)
		require.NoError(t, st.SetAmounts([]float64{50, 0.05, 0.05}))

		problem := equilibrium.NewProblem(sys)
		require.NoError(t, problem.AddSpecies("H2O", 55.508472))
		require.NoError(t, problem.AddSpecies("Na+", 0.1))
		require.NoError(t, problem.AddSpecies("Cl-", 0.1))

		opts := equilibrium.DefaultOptions()
		opts.Hessian = equilibrium.HessianExact
		res, err := solver.SolveWithOptions(problem, st, opts)
		require.NoError(t, err)
		require.True(t, res.Converged, "status %v", res.Status)
	})
}

// TestSolve_InfeasibleZeroRow targets an element no equilibrium species
// carries: an immediate infeasible result, no Go error, state untouched.
func TestSolve_InfeasibleZeroRow(t *testing.T) {
	sys := dissociationSystem(t)
	part, err := core.NewPartition(sys, core.WithInertSpecies("H2O"))
	require.NoError(t, err)

	solver, err := equilibrium.NewSolver(sys, equilibrium.WithPartition(part))
	require.NoError(t, err)

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.SetElementAmount("X", 0.1))
	require.NoError(t, problem.SetElementAmount("Y", 0.1))
	// Oxygen lives only in the frozen solvent; no equilibrium column
	// carries it.
	require.NoError(t, problem.SetElementAmount("O", 55.5))

	st := core.NewState(sys)
	require.NoError(t, st.SetSpeciesAmounts(0.05))
	before := st.Amounts()

	res, err := solver.Solve(problem, st)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, optimum.Infeasible, res.Status)
	assert.InDelta(t, 55.5, res.ErrorFeasibility, 1e-12)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, before, st.Amounts(), "state must be untouched")
}

// TestSolver_ElementAmounts computes partition-consistent targets from a
// state and closes the loop: solving against them reproduces the balances.
func TestSolver_ElementAmounts(t *testing.T) {
	sys := dissociationSystem(t)
	part, err := core.NewPartition(sys, core.WithInertSpecies("H2O"))
	require.NoError(t, err)

	solver, err := equilibrium.NewSolver(sys, equilibrium.WithPartition(part))
	require.NoError(t, err)

	st := core.NewState(sys)
	require.NoError(t, st.SetSpeciesAmountByName("H2O", 55.5))
	require.NoError(t, st.SetSpeciesAmountByName("AB(aq)", 0.05))
	require.NoError(t, st.SetSpeciesAmountByName("A+", 0.02))
	require.NoError(t, st.SetSpeciesAmountByName("B-", 0.02))

	b, err := solver.ElementAmounts(st)
	require.NoError(t, err)

	// Frozen water contributes nothing: H and O rows are zero.
	ix, _ := sys.ElementIndex("X")
	iy, _ := sys.ElementIndex("Y")
	ih, _ := sys.ElementIndex("H")
	io, _ := sys.ElementIndex("O")
	assert.InDelta(t, 0.07, b[ix], 1e-12)
	assert.InDelta(t, 0.07, b[iy], 1e-12)
	assert.Zero(t, b[ih])
	assert.Zero(t, b[io])
	assert.Zero(t, b[sys.ChargeRow()])

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.SetElementAmounts(b))

	res, err := solver.Solve(problem, st)
	require.NoError(t, err)
	require.True(t, res.Converged, "status %v", res.Status)

	got, err := solver.ElementAmounts(st)
	require.NoError(t, err)
	assert.InDelta(t, b[ix], got[ix], 1e-8)
	assert.InDelta(t, b[iy], got[iy], 1e-8)

	_, err = solver.ElementAmounts(nil)
	require.ErrorIs(t, err, equilibrium.ErrNilState)

	other := core.NewState(linearSystem(t))
	_, err = solver.ElementAmounts(other)
	require.ErrorIs(t, err, equilibrium.ErrSystemMismatch)
}

// TestNewSolver_Validation walks the constructor error paths.
func TestNewSolver_Validation(t *testing.T) {
	sys := brineSystem(t)

	t.Run("nil system", func(t *testing.T) {
		_, err := equilibrium.NewSolver(nil)
		require.ErrorIs(t, err, equilibrium.ErrNilSystem)
	})

	t.Run("unknown phase", func(t *testing.T) {
		_, err := equilibrium.NewSolver(sys,
			equilibrium.WithActivityModel("Gaseous", activity.IdealSolution{}),
		)
		require.ErrorIs(t, err, core.ErrPhaseNotFound)
		assert.ErrorContains(t, err, "Gaseous")
	})

	t.Run("nil model", func(t *testing.T) {
		_, err := equilibrium.NewSolver(sys,
			equilibrium.WithActivityModel("Aqueous", nil),
		)
		require.ErrorIs(t, err, equilibrium.ErrNilModel)
	})

	t.Run("nil potentials", func(t *testing.T) {
		_, err := equilibrium.NewSolver(sys, equilibrium.WithStandardPotentials(nil))
		require.ErrorIs(t, err, equilibrium.ErrNilPotentials)
	})

	t.Run("foreign partition", func(t *testing.T) {
		part, err := core.NewPartition(linearSystem(t))
		require.NoError(t, err)

		_, err = equilibrium.NewSolver(sys, equilibrium.WithPartition(part))
		require.ErrorIs(t, err, equilibrium.ErrSystemMismatch)
	})

	t.Run("invalid options", func(t *testing.T) {
		bad := equilibrium.DefaultOptions()
		bad.Epsilon = 0
		_, err := equilibrium.NewSolver(sys, equilibrium.WithOptions(bad))
		require.ErrorIs(t, err, equilibrium.ErrBadOptions)
	})
}

// TestSolve_InputValidation walks the per-solve error paths; none of them
// may touch the state.
func TestSolve_InputValidation(t *testing.T) {
	sys := linearSystem(t)
	solver, err := equilibrium.NewSolver(sys)
	require.NoError(t, err)

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.SetElementAmount("X", 1))
	require.NoError(t, problem.SetElementAmount("Y", 1))

	st := core.NewState(sys)
	require.NoError(t, st.SetSpeciesAmounts(0.25))
	before := st.Amounts()

	t.Run("nil problem", func(t *testing.T) {
		_, err := solver.Solve(nil, st)
		require.ErrorIs(t, err, equilibrium.ErrNilProblem)
	})

	t.Run("nil state", func(t *testing.T) {
		_, err := solver.Solve(problem, nil)
		require.ErrorIs(t, err, equilibrium.ErrNilState)
	})

	t.Run("zero-value problem", func(t *testing.T) {
		var p equilibrium.Problem
		_, err := solver.Solve(&p, st)
		require.ErrorIs(t, err, equilibrium.ErrNilSystem)
	})

	t.Run("foreign problem", func(t *testing.T) {
		_, err := solver.Solve(equilibrium.NewProblem(abSystem(t)), st)
		require.ErrorIs(t, err, equilibrium.ErrSystemMismatch)
	})

	t.Run("foreign state", func(t *testing.T) {
		_, err := solver.Solve(problem, core.NewState(abSystem(t)))
		require.ErrorIs(t, err, equilibrium.ErrSystemMismatch)
	})

	t.Run("bad epsilon", func(t *testing.T) {
		opts := equilibrium.DefaultOptions()
		opts.Epsilon = math.NaN()
		_, err := solver.SolveWithOptions(problem, st, opts)
		require.ErrorIs(t, err, equilibrium.ErrBadOptions)
	})

	t.Run("bad interior-point options", func(t *testing.T) {
		opts := equilibrium.DefaultOptions()
		opts.Optimum.Tau = 1.5
		_, err := solver.SolveWithOptions(problem, st, opts)
		require.ErrorIs(t, err, optimum.ErrBadOptions)
	})

	assert.Equal(t, before, st.Amounts(), "validation failures must not move the state")
}

// TestSolve_Complementarity checks x·z pairing on the final interior-point
// state: species with positive amounts carry vanishing bound duals.
func TestSolve_Complementarity(t *testing.T) {
	sys := linearSystem(t)
	st := core.NewState(sys)
	require.NoError(t, st.SetSpeciesAmounts(0.25))

	problem := equilibrium.NewProblem(sys)
	require.NoError(t, problem.SetElementAmount("X", 1))
	require.NoError(t, problem.SetElementAmount("Y", 1))

	res, err := equilibrium.Equilibrate(problem, st)
	require.NoError(t, err)
	require.True(t, res.Converged)

	require.Len(t, res.Optimum.Z, 3)
	for j := range res.Optimum.X {
		prod := res.Optimum.X[j] * res.Optimum.Z[j]
		assert.Less(t, prod, optimum.DefaultTolComplementarity, "x·z of species %d", j)
		assert.Positive(t, res.Optimum.Z[j], "bound duals stay positive")
	}
}
