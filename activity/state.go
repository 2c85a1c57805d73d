package activity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// WaterMolarMass is the molar mass of water in kg/mol.
const WaterMolarMass = 0.018015268

// PhaseState is the composition snapshot a Model evaluates: one phase at
// fixed temperature and pressure, with the derived quantities every model
// needs already computed.
//
// A PhaseState is built fresh per evaluation and treated as read-only
// afterwards; models must not mutate it.
type PhaseState struct {
	// T is the temperature in K, P the pressure in Pa.
	T, P float64

	// Names, Charges and N describe the phase species in phase order:
	// name, electrical charge, and amount in mol.
	Names   []string
	Charges []float64
	N       []float64

	// X holds molar fractions n_i / NTotal.
	X []float64

	// NTotal is the total species amount of the phase in mol.
	NTotal float64

	// Solvent is the phase-local index of the solvent species, or -1 when
	// the phase has none. Only aqueous states designate a solvent.
	Solvent int

	// M holds molalities in mol/kg(solvent); nil for non-aqueous states.
	// The solvent entry is 1/WaterMolarMass by construction.
	M []float64

	// IonicStrength is the effective ionic strength ½ Σ m_i z_i² in molal
	// units; zero for non-aqueous states.
	IonicStrength float64
}

// NewPhaseState validates the inputs and derives molar fractions for a
// phase without a solvent (molar-fraction scale throughout).
//
// Complexity: O(n) for n species.
func NewPhaseState(temperature, pressure float64, names []string, charges, n []float64) (*PhaseState, error) {
	s := &PhaseState{T: temperature, P: pressure, Names: names, Charges: charges, N: n, Solvent: -1}
	if err := s.derive(); err != nil {
		return nil, err
	}

	return s, nil
}

// NewAqueousState validates the inputs and derives molar fractions,
// molalities and the effective ionic strength for an aqueous phase whose
// solvent sits at phase-local index solvent.
//
// The solvent amount must be strictly positive, otherwise molalities are
// undefined (ErrZeroSolventAmount).
//
// Complexity: O(n) for n species.
func NewAqueousState(temperature, pressure float64, names []string, charges, n []float64, solvent int) (*PhaseState, error) {
	s := &PhaseState{T: temperature, P: pressure, Names: names, Charges: charges, N: n, Solvent: solvent}
	if err := s.derive(); err != nil {
		return nil, err
	}

	if solvent < 0 || solvent >= len(n) {
		return nil, ErrBadSolventIndex
	}
	nw := n[solvent]
	if nw <= 0 {
		return nil, ErrZeroSolventAmount
	}

	// Molalities m_i = n_i / (n_w · M_w); the solvent entry is 1/M_w.
	kg := nw * WaterMolarMass
	s.M = floats.ScaleTo(make([]float64, len(n)), 1/kg, n)

	// Effective ionic strength (molal).
	var ie float64
	for i, z := range charges {
		ie += s.M[i] * z * z
	}
	s.IonicStrength = 0.5 * ie

	return s, nil
}

// derive checks the raw inputs and computes totals and molar fractions.
func (s *PhaseState) derive() error {
	if !isFinite(s.T) || s.T <= 0 || !isFinite(s.P) || s.P <= 0 {
		return fmt.Errorf("%w: T=%v P=%v", ErrBadConditions, s.T, s.P)
	}
	n := len(s.N)
	if n == 0 || len(s.Names) != n || len(s.Charges) != n {
		return ErrDimensionMismatch
	}

	for _, v := range s.N {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("%w: %v", ErrBadAmount, v)
		}
	}
	total := floats.Sum(s.N)
	if total <= 0 {
		return ErrZeroTotalAmount
	}
	s.NTotal = total
	s.X = floats.ScaleTo(make([]float64, n), 1/total, s.N)

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
