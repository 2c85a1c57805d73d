package equilibrium

import (
	"fmt"

	"github.com/gibbslab/gibbs/core"
)

// Problem fixes the conditions of one equilibrium calculation: temperature,
// pressure, and the element and charge amounts the solution must conserve.
//
// The target vector has one entry per catalog element, in catalog order,
// plus a trailing charge entry. Targets cover the equilibrium species only:
// material frozen by the partition (kinetic or inert species) is excluded,
// and Solver.ElementAmounts computes consistent targets from a state.
//
// A Problem is a plain value holder; solving never mutates it, so one
// Problem can serve many solves and many states.
type Problem struct {
	sys         *core.System
	temperature float64
	pressure    float64
	b           []float64

	lowerBounds map[string]float64
}

// NewProblem creates a Problem for sys at core.DefaultTemperature and
// core.DefaultPressure with every element and charge target zero.
func NewProblem(sys *core.System) *Problem {
	var nb int
	if sys != nil {
		nb = sys.NumElements() + 1
	}

	return &Problem{
		sys:         sys,
		temperature: core.DefaultTemperature,
		pressure:    core.DefaultPressure,
		b:           make([]float64, nb),
	}
}

// System returns the catalog this problem refers to.
func (p *Problem) System() *core.System { return p.sys }

// Temperature returns the temperature in K.
func (p *Problem) Temperature() float64 { return p.temperature }

// Pressure returns the pressure in Pa.
func (p *Problem) Pressure() float64 { return p.pressure }

// SetTemperature sets the temperature in K.
func (p *Problem) SetTemperature(val float64) error {
	if !finite(val) || val <= 0 {
		return fmt.Errorf("%w: %v", core.ErrBadTemperature, val)
	}
	p.temperature = val

	return nil
}

// SetPressure sets the pressure in Pa.
func (p *Problem) SetPressure(val float64) error {
	if !finite(val) || val <= 0 {
		return fmt.Errorf("%w: %v", core.ErrBadPressure, val)
	}
	p.pressure = val

	return nil
}

// SetElementAmount sets the target amount (mol) of the named element.
func (p *Problem) SetElementAmount(name string, val float64) error {
	if p.sys == nil {
		return ErrNilSystem
	}
	i, ok := p.sys.ElementIndex(name)
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrElementNotFound, name)
	}
	if !finite(val) || val < 0 {
		return fmt.Errorf("%w: element %q at %v", ErrBadTarget, name, val)
	}
	p.b[i] = val

	return nil
}

// SetCharge sets the target total charge (mol of elementary charge).
// Zero, the default, is electroneutrality.
func (p *Problem) SetCharge(val float64) error {
	if p.sys == nil {
		return ErrNilSystem
	}
	if !finite(val) {
		return fmt.Errorf("%w: charge %v", ErrBadTarget, val)
	}
	p.b[p.sys.ChargeRow()] = val

	return nil
}

// SetElementAmounts replaces the whole target vector: one entry per element
// in catalog order, charge last. Element entries must be non-negative.
func (p *Problem) SetElementAmounts(vec []float64) error {
	if p.sys == nil {
		return ErrNilSystem
	}
	if len(vec) != len(p.b) {
		return fmt.Errorf("%w: %d targets for %d elements plus charge", ErrDimensionMismatch, len(vec), p.sys.NumElements())
	}
	charge := p.sys.ChargeRow()
	for i, v := range vec {
		if !finite(v) || (v < 0 && i != charge) {
			return fmt.Errorf("%w: entry %d at %v", ErrBadTarget, i, v)
		}
	}
	copy(p.b, vec)

	return nil
}

// AddSpecies accumulates the element and charge content of amount mol of
// the named species into the targets. Building b from a recipe:
//
//	_ = problem.AddSpecies("H2O(l)", 55.5)
//	_ = problem.AddSpecies("NaCl(s)", 0.1)
func (p *Problem) AddSpecies(name string, amount float64) error {
	if p.sys == nil {
		return ErrNilSystem
	}
	i, ok := p.sys.SpeciesIndex(name)
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrSpeciesNotFound, name)
	}
	if !finite(amount) || amount < 0 {
		return fmt.Errorf("%w: %v", core.ErrBadAmount, amount)
	}

	sp := p.sys.Species(i)
	for sym, coeff := range sp.Elements {
		ie, _ := p.sys.ElementIndex(sym)
		p.b[ie] += coeff * amount
	}
	p.b[p.sys.ChargeRow()] += sp.Charge * amount

	return nil
}

// AddState accumulates the element and charge content of every species of
// st into the targets. The state must belong to the same system.
func (p *Problem) AddState(st *core.State) error {
	if p.sys == nil {
		return ErrNilSystem
	}
	if st == nil {
		return ErrNilState
	}
	if st.System() != p.sys {
		return ErrSystemMismatch
	}
	for i, v := range st.ElementAmounts() {
		p.b[i] += v
	}

	return nil
}

// SetSpeciesLowerBound keeps the named species at or above bound mol in
// every solve of this problem. The species must end up in the equilibrium
// set of the solver's partition, which is checked at solve time.
func (p *Problem) SetSpeciesLowerBound(name string, bound float64) error {
	if p.sys == nil {
		return ErrNilSystem
	}
	if _, ok := p.sys.SpeciesIndex(name); !ok {
		return fmt.Errorf("%w: %q", core.ErrSpeciesNotFound, name)
	}
	if !finite(bound) || bound < 0 {
		return fmt.Errorf("%w: %v", core.ErrBadAmount, bound)
	}
	if p.lowerBounds == nil {
		p.lowerBounds = make(map[string]float64)
	}
	p.lowerBounds[name] = bound

	return nil
}

// ElementAmounts returns a copy of the target vector, charge last.
func (p *Problem) ElementAmounts() []float64 {
	out := make([]float64, len(p.b))
	copy(out, p.b)

	return out
}
