// SPDX-License-Identifier: MIT

package optimum

// State is the primal-dual iterate of a solve: X the primal variables,
// Y the equality-constraint multipliers, Z the lower-bound multipliers.
//
// Solve reads it as the starting point and overwrites it with the final
// iterate, converged or not. Seeding the State of a previous solve on a
// nearby problem warm-starts the next one; vectors of the wrong length or
// with unusable entries are rebuilt internally instead of rejected.
type State struct {
	X []float64
	Y []float64
	Z []float64
}

// NewState returns a State sized for n variables and m equality
// constraints, all zeros.
func NewState(n, m int) *State {
	return &State{
		X: make([]float64, n),
		Y: make([]float64, m),
		Z: make([]float64, n),
	}
}

// Clone returns an independent deep copy; nil stays nil.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	return &State{
		X: append([]float64(nil), s.X...),
		Y: append([]float64(nil), s.Y...),
		Z: append([]float64(nil), s.Z...),
	}
}
