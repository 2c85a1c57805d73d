package core

import "fmt"

// State holds the mutable thermodynamic conditions of one calculation:
// temperature, pressure and the amounts of every species of a System.
//
// A State is owned by its caller. It is NOT safe for concurrent use; run
// concurrent calculations on distinct State values sharing one System.
type State struct {
	sys *System

	temperature float64 // K
	pressure    float64 // Pa
	amounts     []float64
}

// Default thermodynamic conditions of a fresh State.
const (
	// DefaultTemperature is 25 °C in kelvin.
	DefaultTemperature = 298.15

	// DefaultPressure is 1 bar in pascal.
	DefaultPressure = 1e5
)

// NewState creates a State for sys at DefaultTemperature and DefaultPressure
// with all species amounts zero.
func NewState(sys *System) *State {
	return &State{
		sys:         sys,
		temperature: DefaultTemperature,
		pressure:    DefaultPressure,
		amounts:     make([]float64, sys.NumSpecies()),
	}
}

// System returns the catalog this state refers to.
func (st *State) System() *System { return st.sys }

// Temperature returns the temperature in K.
func (st *State) Temperature() float64 { return st.temperature }

// Pressure returns the pressure in Pa.
func (st *State) Pressure() float64 { return st.pressure }

// SetTemperature sets the temperature in K.
func (st *State) SetTemperature(val float64) error {
	if !finite(val) || val <= 0 {
		return fmt.Errorf("%w: %v", ErrBadTemperature, val)
	}
	st.temperature = val

	return nil
}

// SetPressure sets the pressure in Pa.
func (st *State) SetPressure(val float64) error {
	if !finite(val) || val <= 0 {
		return fmt.Errorf("%w: %v", ErrBadPressure, val)
	}
	st.pressure = val

	return nil
}

// SpeciesAmount returns the amount (mol) of the species at global index i.
func (st *State) SpeciesAmount(i int) float64 { return st.amounts[i] }

// SpeciesAmountByName returns the amount (mol) of the named species.
func (st *State) SpeciesAmountByName(name string) (float64, error) {
	i, ok := st.sys.SpeciesIndex(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrSpeciesNotFound, name)
	}

	return st.amounts[i], nil
}

// SetSpeciesAmount sets the amount (mol) of the species at global index i.
func (st *State) SetSpeciesAmount(i int, val float64) error {
	if i < 0 || i >= len(st.amounts) {
		return ErrDimensionMismatch
	}
	if !finite(val) || val < 0 {
		return fmt.Errorf("%w: %v", ErrBadAmount, val)
	}
	st.amounts[i] = val

	return nil
}

// SetSpeciesAmountByName sets the amount (mol) of the named species.
func (st *State) SetSpeciesAmountByName(name string, val float64) error {
	i, ok := st.sys.SpeciesIndex(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrSpeciesNotFound, name)
	}

	return st.SetSpeciesAmount(i, val)
}

// SetSpeciesAmounts sets every species amount to the same value (mol).
func (st *State) SetSpeciesAmounts(val float64) error {
	if !finite(val) || val < 0 {
		return fmt.Errorf("%w: %v", ErrBadAmount, val)
	}
	for i := range st.amounts {
		st.amounts[i] = val
	}

	return nil
}

// SetAmounts copies the full species-amount vector into the state.
// Length of n must be NumSpecies; entries must be non-negative and finite.
func (st *State) SetAmounts(n []float64) error {
	if len(n) != len(st.amounts) {
		return ErrDimensionMismatch
	}
	for _, v := range n {
		if !finite(v) || v < 0 {
			return fmt.Errorf("%w: %v", ErrBadAmount, v)
		}
	}
	copy(st.amounts, n)

	return nil
}

// Amounts returns a copy of the full species-amount vector in global order.
func (st *State) Amounts() []float64 {
	out := make([]float64, len(st.amounts))
	copy(out, st.amounts)

	return out
}

// PhaseAmounts returns a copy of the amounts of the species of phase i,
// in phase order.
func (st *State) PhaseAmounts(i int) []float64 {
	off, n := st.sys.PhaseOffset(i), st.sys.NumSpeciesInPhase(i)
	out := make([]float64, n)
	copy(out, st.amounts[off:off+n])

	return out
}

// ElementAmounts computes the element (and charge) totals b = A·n carried by
// the current species amounts.
func (st *State) ElementAmounts() []float64 {
	b, _ := st.sys.ElementAmounts(st.amounts)

	return b
}

// Clone returns an independent copy of the state sharing the same System.
func (st *State) Clone() *State {
	cp := &State{sys: st.sys, temperature: st.temperature, pressure: st.pressure}
	cp.amounts = make([]float64, len(st.amounts))
	copy(cp.amounts, st.amounts)

	return cp
}
