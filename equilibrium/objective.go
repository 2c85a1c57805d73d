package equilibrium

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gibbslab/gibbs/activity"
	"github.com/gibbslab/gibbs/core"
	"github.com/gibbslab/gibbs/optimum"
)

// GasConstant is the universal gas constant in J/(mol·K).
const GasConstant = 8.3144621

// phaseMember ties one equilibrium species to its two indexings: local is
// the index within its phase, pos the index within the solve vector.
type phaseMember struct {
	local int
	pos   int
}

// phaseBlock groups the fixed per-phase inputs of one objective evaluation.
type phaseBlock struct {
	name    string
	model   activity.Model
	names   []string
	charges []float64
	offset  int
	solvent int
	members []phaseMember
}

// gibbsObjective evaluates G(n)/RT over the equilibrium species:
//
//	f(x)  = Σ xⱼ·(μ°ⱼ/RT + ln aⱼ)
//	∇f(x) =        μ°ⱼ/RT + ln aⱼ
//
// the gradient being the chemical potential itself, by Gibbs–Duhem. The
// frozen kinetic and inert amounts stay in the full composition vector, so
// mixing terms (molar fractions, molalities, ionic strength) see them.
//
// Amounts are floored at epsilon before any phase state is built, keeping
// every logarithm finite even for species pinned at zero.
//
// Buffers are reused across iterations; a gibbsObjective serves one solve
// at a time.
type gibbsObjective struct {
	sys    *core.System
	blocks []phaseBlock
	eq     []int

	mode    HessianMode
	epsilon float64
	tK      float64
	pPa     float64

	mu0    []float64 // μ°ⱼ/(R·T) per solve-vector position
	full   []float64 // full composition, frozen species at state amounts
	grad   []float64
	hdiag  []float64
	hdense *mat.Dense
}

// newGibbsObjective precomputes the phase blocks for the equilibrium set
// eq, with pos mapping global species index to solve-vector position.
func newGibbsObjective(sys *core.System, eq []int, pos map[int]int, models []activity.Model) *gibbsObjective {
	obj := &gibbsObjective{
		sys:   sys,
		eq:    eq,
		mu0:   make([]float64, len(eq)),
		full:  make([]float64, sys.NumSpecies()),
		grad:  make([]float64, len(eq)),
		hdiag: make([]float64, len(eq)),
	}

	for ip := 0; ip < sys.NumPhases(); ip++ {
		ph := sys.Phase(ip)
		pb := phaseBlock{
			name:    ph.Name,
			model:   models[ip],
			names:   make([]string, len(ph.Species)),
			charges: make([]float64, len(ph.Species)),
			offset:  sys.PhaseOffset(ip),
			solvent: -1,
		}
		for k, sp := range ph.Species {
			pb.names[k] = sp.Name
			pb.charges[k] = sp.Charge
			if sp.Name == ph.Solvent {
				pb.solvent = k
			}
			if j, ok := pos[pb.offset+k]; ok {
				pb.members = append(pb.members, phaseMember{local: k, pos: j})
			}
		}
		obj.blocks = append(obj.blocks, pb)
	}

	return obj
}

// prepare loads the per-solve inputs: conditions, the frozen composition
// snapshot, the reduced standard potentials, and the curvature mode.
func (o *gibbsObjective) prepare(problem *Problem, st *core.State, pot []float64, opts Options) error {
	o.tK, o.pPa = problem.temperature, problem.pressure
	o.mode, o.epsilon = opts.Hessian, opts.Epsilon
	copy(o.full, st.Amounts())

	rt := GasConstant * o.tK
	for j, i := range o.eq {
		v := pot[i] / rt
		if !finite(v) {
			return fmt.Errorf("%w: standard potential of %q", ErrNonFiniteValue, o.sys.Species(i).Name)
		}
		o.mu0[j] = v
	}

	if o.mode == HessianExact && o.hdense == nil {
		o.hdense = mat.NewDense(len(o.eq), len(o.eq), nil)
	}

	return nil
}

// evaluate is the optimum.Objective bound to the solve.
func (o *gibbsObjective) evaluate(x []float64) (optimum.ObjectiveResult, error) {
	for j, i := range o.eq {
		v := x[j]
		if v < o.epsilon {
			v = o.epsilon
		}
		o.full[i] = v
	}
	if o.mode == HessianExact {
		o.hdense.Zero()
	}

	var value float64
	for ib := range o.blocks {
		pb := &o.blocks[ib]
		if len(pb.members) == 0 {
			// Fully frozen phase: constant Gibbs contribution, no gradient.
			continue
		}
		n := o.full[pb.offset : pb.offset+len(pb.names)]

		var (
			ps  *activity.PhaseState
			err error
		)
		if pb.solvent >= 0 {
			ps, err = activity.NewAqueousState(o.tK, o.pPa, pb.names, pb.charges, n, pb.solvent)
		} else {
			ps, err = activity.NewPhaseState(o.tK, o.pPa, pb.names, pb.charges, n)
		}
		if err != nil {
			return optimum.ObjectiveResult{}, fmt.Errorf("equilibrium: phase %q: %w", pb.name, err)
		}

		res, err := pb.model.Evaluate(ps)
		if err != nil {
			return optimum.ObjectiveResult{}, fmt.Errorf("equilibrium: phase %q: %w", pb.name, err)
		}
		if len(res.LnActivities) != len(pb.names) {
			return optimum.ObjectiveResult{}, fmt.Errorf("%w: model for phase %q returned %d activities for %d species",
				ErrDimensionMismatch, pb.name, len(res.LnActivities), len(pb.names))
		}

		for _, m := range pb.members {
			mu := o.mu0[m.pos] + res.LnActivities[m.local]
			if !finite(mu) {
				return optimum.ObjectiveResult{}, fmt.Errorf("%w: chemical potential of %q", ErrNonFiniteValue, pb.names[m.local])
			}
			value += x[m.pos] * mu
			o.grad[m.pos] = mu
		}

		switch {
		case o.mode == HessianExact && res.DLnActivities != nil:
			for _, a := range pb.members {
				for _, c := range pb.members {
					o.hdense.Set(a.pos, c.pos, res.DLnActivities.At(a.local, c.local))
				}
			}
		case o.mode == HessianExact:
			// Model without derivatives: ideal-mixing diagonal for its block.
			for _, a := range pb.members {
				o.hdense.Set(a.pos, a.pos, 1/o.full[o.eq[a.pos]])
			}
		default:
			for _, a := range pb.members {
				o.hdiag[a.pos] = 1 / o.full[o.eq[a.pos]]
			}
		}
	}

	out := optimum.ObjectiveResult{Value: value, Gradient: o.grad}
	if o.mode == HessianExact {
		out.Hessian = optimum.Hessian{Dense: o.hdense}
	} else {
		out.Hessian = optimum.Hessian{Diagonal: o.hdiag}
	}

	return out, nil
}
