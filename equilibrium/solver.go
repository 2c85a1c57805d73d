package equilibrium

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/gibbslab/gibbs/activity"
	"github.com/gibbslab/gibbs/core"
	"github.com/gibbslab/gibbs/optimum"
)

// StandardPotentials supplies the standard chemical potentials μ°ᵢ(T, P) in
// J/mol for every species of the system, in global species order. The
// provider is called once per solve, at the problem's conditions.
type StandardPotentials func(temperature, pressure float64) ([]float64, error)

// Solver computes equilibrium states for one System. The partition, the
// per-phase activity models and the standard-potential provider are bound
// at construction and never switched afterwards.
//
// A Solver reuses evaluation buffers across iterations, so an instance is
// sequential: concurrent calculations need distinct Solver and core.State
// values. The System, Partition and models themselves may be shared.
type Solver struct {
	sys    *core.System
	part   *core.Partition
	models []activity.Model
	mu0    StandardPotentials
	opts   Options

	formula *mat.Dense  // partition's reduced matrix, read-only
	pos     map[int]int // global species index -> solve-vector position
	obj     *gibbsObjective
}

// solverConfig accumulates the raw option inputs before resolution.
type solverConfig struct {
	part   *core.Partition
	models map[string]activity.Model
	mu0    StandardPotentials
	mu0Set bool
	opts   *Options
}

// SolverOption configures NewSolver.
type SolverOption func(*solverConfig)

// WithPartition binds the species partition. Nil keeps the default
// all-equilibrium partition.
func WithPartition(p *core.Partition) SolverOption {
	return func(c *solverConfig) { c.part = p }
}

// WithActivityModel binds an activity model to the named phase, replacing
// the default. Defaults are activity.IdealAqueous for phases that declare a
// solvent and activity.IdealSolution otherwise.
func WithActivityModel(phase string, m activity.Model) SolverOption {
	return func(c *solverConfig) { c.models[phase] = m }
}

// WithStandardPotentials binds the standard chemical-potential provider.
// The default provider returns zeros, reducing the objective to mixing
// terms alone.
func WithStandardPotentials(fn StandardPotentials) SolverOption {
	return func(c *solverConfig) { c.mu0, c.mu0Set = fn, true }
}

// WithOptions sets the solver's default options, used by Solve. The other
// entry points take explicit options per call.
func WithOptions(o Options) SolverOption {
	return func(c *solverConfig) { c.opts = &o }
}

// NewSolver resolves the options against sys and builds the Solver.
// Unknown phase names, nil models, foreign partitions and invalid options
// are rejected here, before any solve.
func NewSolver(sys *core.System, opts ...SolverOption) (*Solver, error) {
	if sys == nil {
		return nil, ErrNilSystem
	}

	cfg := solverConfig{models: make(map[string]activity.Model)}
	for _, opt := range opts {
		opt(&cfg)
	}

	part := cfg.part
	if part == nil {
		var err error
		if part, err = core.NewPartition(sys); err != nil {
			return nil, err
		}
	} else if part.System() != sys {
		return nil, fmt.Errorf("%w: partition built on another system", ErrSystemMismatch)
	}

	models := make([]activity.Model, sys.NumPhases())
	for ip := range models {
		if sys.Phase(ip).Solvent != "" {
			models[ip] = activity.IdealAqueous{}
		} else {
			models[ip] = activity.IdealSolution{}
		}
	}
	for name, m := range cfg.models {
		ip, ok := sys.PhaseIndex(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrPhaseNotFound, name)
		}
		if m == nil {
			return nil, fmt.Errorf("%w: phase %q", ErrNilModel, name)
		}
		models[ip] = m
	}

	pot := cfg.mu0
	if cfg.mu0Set && pot == nil {
		return nil, ErrNilPotentials
	}
	if pot == nil {
		zeros := make([]float64, sys.NumSpecies())
		pot = func(_, _ float64) ([]float64, error) { return zeros, nil }
	}

	o := DefaultOptions()
	if cfg.opts != nil {
		o = *cfg.opts
		if err := o.Validate(); err != nil {
			return nil, err
		}
	}

	eq := part.EquilibriumSpecies()
	pos := make(map[int]int, len(eq))
	for j, i := range eq {
		pos[i] = j
	}

	return &Solver{
		sys:     sys,
		part:    part,
		models:  models,
		mu0:     pot,
		opts:    o,
		formula: part.EquilibriumFormulaMatrix(),
		pos:     pos,
		obj:     newGibbsObjective(sys, eq, pos, models),
	}, nil
}

// System returns the catalog this solver is bound to.
func (s *Solver) System() *core.System { return s.sys }

// Partition returns the species partition this solver is bound to.
func (s *Solver) Partition() *core.Partition { return s.part }

// ElementAmounts returns the element and charge content carried by the
// equilibrium species of st under this solver's partition: consistent
// targets for a Problem meant to reproduce st's composition.
func (s *Solver) ElementAmounts(st *core.State) ([]float64, error) {
	if st == nil {
		return nil, ErrNilState
	}
	if st.System() != s.sys {
		return nil, ErrSystemMismatch
	}

	x := mat.NewVecDense(len(s.obj.eq), nil)
	for j, i := range s.obj.eq {
		x.SetVec(j, st.SpeciesAmount(i))
	}
	var b mat.VecDense
	b.MulVec(s.formula, x)

	out := make([]float64, b.Len())
	copy(out, b.RawVector().Data)

	return out, nil
}

// Solve equilibrates st under problem using the solver's default options.
//
// The state provides the initial guess (its equilibrium amounts) and
// receives the result: on convergence the optimal amounts, otherwise the
// last iterate. Frozen kinetic and inert amounts are never written.
func (s *Solver) Solve(problem *Problem, st *core.State) (Result, error) {
	return s.solve(problem, st, nil, s.opts)
}

// SolveWithOptions equilibrates st under problem with explicit options.
func (s *Solver) SolveWithOptions(problem *Problem, st *core.State, opts Options) (Result, error) {
	return s.solve(problem, st, nil, opts)
}

// SolveRestricted equilibrates st under problem with per-solve species
// restrictions layered on top. A nil restriction set is valid and empty.
func (s *Solver) SolveRestricted(problem *Problem, st *core.State, r *Restrictions, opts Options) (Result, error) {
	return s.solve(problem, st, r, opts)
}

func (s *Solver) solve(problem *Problem, st *core.State, r *Restrictions, opts Options) (Result, error) {
	start := time.Now()

	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if problem == nil {
		return Result{}, ErrNilProblem
	}
	if st == nil {
		return Result{}, ErrNilState
	}
	if problem.sys == nil {
		return Result{}, ErrNilSystem
	}
	if problem.sys != s.sys || st.System() != s.sys {
		return Result{}, ErrSystemMismatch
	}
	if !finite(problem.temperature) || problem.temperature <= 0 {
		return Result{}, fmt.Errorf("%w: %v", core.ErrBadTemperature, problem.temperature)
	}
	if !finite(problem.pressure) || problem.pressure <= 0 {
		return Result{}, fmt.Errorf("%w: %v", core.ErrBadPressure, problem.pressure)
	}

	// Per-species bounds: problem-level lower bounds first, then the
	// per-solve restrictions on top.
	ne := len(s.obj.eq)
	lower := make([]float64, ne)
	upper := make([]float64, ne)
	for j := range upper {
		upper[j] = math.Inf(1)
	}
	for name, bound := range problem.lowerBounds {
		i, _ := s.sys.SpeciesIndex(name) // existence checked by the setter
		j, ok := s.pos[i]
		if !ok {
			return Result{}, fmt.Errorf("%w: %q", ErrSpeciesNotFree, name)
		}
		lower[j] = bound
	}
	if err := r.apply(s.sys, s.pos, lower, upper); err != nil {
		return Result{}, err
	}

	// Drop vacuous constraint rows: an all-zero row constrains nothing,
	// but an all-zero row with a target beyond tolerance can never be met.
	rows, _ := s.formula.Dims()
	keep := make([]int, 0, rows)
	var worst float64
	for ri := 0; ri < rows; ri++ {
		zero := true
		for j := 0; j < ne; j++ {
			if s.formula.At(ri, j) != 0 {
				zero = false

				break
			}
		}
		if !zero {
			keep = append(keep, ri)

			continue
		}
		if v := math.Abs(problem.b[ri]); v > opts.Optimum.TolFeasibility && v > worst {
			worst = v
		}
	}
	if worst > 0 {
		return Result{Result: optimum.Result{
			Status:           optimum.Infeasible,
			ErrorFeasibility: worst,
			Time:             time.Since(start),
		}}, nil
	}

	m := len(keep)
	var a *mat.Dense
	beff := make([]float64, m)
	if m > 0 {
		a = mat.NewDense(m, ne, nil)
		for rr, ri := range keep {
			for j := 0; j < ne; j++ {
				a.Set(rr, j, s.formula.At(ri, j))
			}
			beff[rr] = problem.b[ri]
		}
	}

	// Starting point: the explicit warm state when its shape fits, the
	// state's own amounts otherwise, floored at Epsilon and at the bounds.
	optState := optimum.NewState(ne, m)
	if w := opts.Warm; w != nil && len(w.X) == ne {
		copy(optState.X, w.X)
		optState.Y = append([]float64(nil), w.Y...)
		optState.Z = append([]float64(nil), w.Z...)
	} else {
		for j, i := range s.obj.eq {
			optState.X[j] = st.SpeciesAmount(i)
		}
	}
	for j := range optState.X {
		if optState.X[j] < opts.Epsilon {
			optState.X[j] = opts.Epsilon
		}
		if optState.X[j] < lower[j] {
			optState.X[j] = lower[j]
		}
	}

	pot, err := s.mu0(problem.temperature, problem.pressure)
	if err != nil {
		return Result{}, fmt.Errorf("equilibrium: standard potentials: %w", err)
	}
	if len(pot) != s.sys.NumSpecies() {
		return Result{}, fmt.Errorf("%w: %d standard potentials for %d species",
			ErrDimensionMismatch, len(pot), s.sys.NumSpecies())
	}
	if err := s.obj.prepare(problem, st, pot, opts); err != nil {
		return Result{}, err
	}

	optRes, err := optimum.Solve(optimum.Problem{
		Objective: s.obj.evaluate,
		A:         a,
		B:         beff,
		Lower:     lower,
		Upper:     upper,
	}, optState, opts.Optimum)
	res := Result{Result: optRes, Optimum: *optState}
	if err != nil {
		// Broken input or a non-finite evaluation: state untouched.
		return res, err
	}

	// Write the final iterate back, converged or not. Conditions first, so
	// the state is coherent with the amounts.
	if err := st.SetTemperature(problem.temperature); err != nil {
		return res, err
	}
	if err := st.SetPressure(problem.pressure); err != nil {
		return res, err
	}
	for j, i := range s.obj.eq {
		if err := st.SetSpeciesAmount(i, optState.X[j]); err != nil {
			return res, err
		}
	}

	return res, nil
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
