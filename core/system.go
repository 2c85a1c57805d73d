package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// System is the immutable chemical catalog: elements, species grouped into
// phases, and the formula matrix relating them.
//
// Species are indexed globally in phase order: all species of phase 0 first,
// then phase 1, and so on, each phase preserving its declaration order.
// Elements keep the order of the catalog passed to NewSystem. The formula
// matrix has one row per element plus a trailing charge row, and one column
// per species; it is fixed at construction.
//
// A System is safe for concurrent use: nothing mutates it after NewSystem
// returns, and every accessor that exposes internal storage returns a copy.
type System struct {
	elements []Element
	species  []Species
	phases   []Phase

	elementIndex map[string]int
	speciesIndex map[string]int
	phaseIndex   map[string]int

	speciesPhase []int // global species index -> phase index
	phaseOffset  []int // phase index -> global index of its first species

	formula *mat.Dense // (NumElements+1) x NumSpecies; last row is charge
}

// NewSystem validates the catalog and builds the System.
//
// The element list fixes the row order of the formula matrix. Every element
// symbol used by a species formula must appear in it. Names must be unique at
// their level: elements among elements, phases among phases, species across
// the whole system.
//
// Species molar masses are derived here as the composition-weighted sum of
// element molar masses; any MolarMass preset by the caller is overwritten.
//
// Complexity: O(E + N·F) for E elements, N species, F formula terms.
func NewSystem(elements []Element, phases ...Phase) (*System, error) {
	if len(phases) == 0 {
		return nil, ErrNoPhases
	}

	sys := &System{
		elements:     make([]Element, len(elements)),
		phases:       make([]Phase, len(phases)),
		elementIndex: make(map[string]int, len(elements)),
		speciesIndex: make(map[string]int),
		phaseIndex:   make(map[string]int, len(phases)),
		phaseOffset:  make([]int, len(phases)),
	}

	// Element catalog: unique symbols, positive finite molar masses.
	for i, e := range elements {
		if !validName(e.Name) {
			return nil, fmt.Errorf("%w: element %d", ErrEmptyName, i)
		}
		if !finite(e.MolarMass) || e.MolarMass <= 0 {
			return nil, fmt.Errorf("%w: element %q", ErrBadMolarMass, e.Name)
		}
		if _, dup := sys.elementIndex[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateElement, e.Name)
		}
		sys.elementIndex[e.Name] = i
		sys.elements[i] = e
	}

	// Phases and species: validate, copy, index.
	for ip, p := range phases {
		if !validName(p.Name) {
			return nil, fmt.Errorf("%w: phase %d", ErrEmptyName, ip)
		}
		if len(p.Species) == 0 {
			return nil, fmt.Errorf("%w: phase %q", ErrEmptyPhase, p.Name)
		}
		if _, dup := sys.phaseIndex[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePhase, p.Name)
		}
		sys.phaseIndex[p.Name] = ip
		sys.phaseOffset[ip] = len(sys.species)

		cp := Phase{Name: p.Name, Solvent: p.Solvent, Species: make([]Species, len(p.Species))}
		solventSeen := p.Solvent == ""
		for is, s := range p.Species {
			if !validName(s.Name) {
				return nil, fmt.Errorf("%w: species %d of phase %q", ErrEmptyName, is, p.Name)
			}
			if _, dup := sys.speciesIndex[s.Name]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSpecies, s.Name)
			}
			if !finite(s.Charge) {
				return nil, fmt.Errorf("%w: species %q", ErrBadCharge, s.Name)
			}

			// Derive the molar mass while validating the formula.
			var mass float64
			comp := make(map[string]float64, len(s.Elements))
			for sym, coeff := range s.Elements {
				ie, ok := sys.elementIndex[sym]
				if !ok {
					return nil, fmt.Errorf("%w: %q in species %q", ErrUnknownElement, sym, s.Name)
				}
				if !finite(coeff) || coeff < 0 {
					return nil, fmt.Errorf("%w: %q in species %q", ErrBadComposition, sym, s.Name)
				}
				comp[sym] = coeff
				mass += coeff * sys.elements[ie].MolarMass
			}

			rec := Species{Name: s.Name, Elements: comp, Charge: s.Charge, MolarMass: mass}
			sys.speciesIndex[s.Name] = len(sys.species)
			sys.species = append(sys.species, rec)
			sys.speciesPhase = append(sys.speciesPhase, ip)
			cp.Species[is] = rec

			if s.Name == p.Solvent {
				solventSeen = true
			}
		}
		if !solventSeen {
			return nil, fmt.Errorf("%w: %q in phase %q", ErrUnknownSolvent, p.Solvent, p.Name)
		}
		sys.phases[ip] = cp
	}

	// Formula matrix: element rows in catalog order, then the charge row.
	rows, cols := len(sys.elements)+1, len(sys.species)
	sys.formula = mat.NewDense(rows, cols, nil)
	for j, s := range sys.species {
		for sym, coeff := range s.Elements {
			sys.formula.Set(sys.elementIndex[sym], j, coeff)
		}
		sys.formula.Set(rows-1, j, s.Charge)
	}

	return sys, nil
}

// NumElements returns the number of elements in the catalog.
func (s *System) NumElements() int { return len(s.elements) }

// NumSpecies returns the number of species across all phases.
func (s *System) NumSpecies() int { return len(s.species) }

// NumPhases returns the number of phases.
func (s *System) NumPhases() int { return len(s.phases) }

// NumSpeciesInPhase returns the number of species in phase i.
func (s *System) NumSpeciesInPhase(i int) int { return len(s.phases[i].Species) }

// Element returns the element at index i.
func (s *System) Element(i int) Element { return s.elements[i] }

// Elements returns a copy of the element catalog in row order.
func (s *System) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)

	return out
}

// Species returns the species record at global index i. The composition map
// is copied so the catalog cannot be mutated through it.
func (s *System) Species(i int) Species {
	rec := s.species[i]
	comp := make(map[string]float64, len(rec.Elements))
	for k, v := range rec.Elements {
		comp[k] = v
	}
	rec.Elements = comp

	return rec
}

// Phase returns the phase record at index i with its species copied.
func (s *System) Phase(i int) Phase {
	p := s.phases[i]
	out := Phase{Name: p.Name, Solvent: p.Solvent, Species: make([]Species, len(p.Species))}
	for k := range p.Species {
		out.Species[k] = s.Species(s.phaseOffset[i] + k)
	}

	return out
}

// ElementIndex returns the row index of the named element.
func (s *System) ElementIndex(name string) (int, bool) {
	i, ok := s.elementIndex[name]

	return i, ok
}

// SpeciesIndex returns the global column index of the named species.
func (s *System) SpeciesIndex(name string) (int, bool) {
	i, ok := s.speciesIndex[name]

	return i, ok
}

// PhaseIndex returns the index of the named phase.
func (s *System) PhaseIndex(name string) (int, bool) {
	i, ok := s.phaseIndex[name]

	return i, ok
}

// PhaseIndexWithSpecies returns the index of the phase owning global species i.
func (s *System) PhaseIndexWithSpecies(i int) int { return s.speciesPhase[i] }

// PhaseOffset returns the global index of the first species of phase i.
func (s *System) PhaseOffset(i int) int { return s.phaseOffset[i] }

// SpeciesIndicesInPhase returns the global indices of the species of phase i,
// in phase order.
func (s *System) SpeciesIndicesInPhase(i int) []int {
	out := make([]int, len(s.phases[i].Species))
	for k := range out {
		out[k] = s.phaseOffset[i] + k
	}

	return out
}

// FormulaMatrix returns a copy of the formula matrix: one row per element in
// catalog order, a trailing charge row, one column per species in global
// order. A[i][j] is the coefficient of element i in species j; the last row
// carries species charges.
func (s *System) FormulaMatrix() *mat.Dense { return mat.DenseCopyOf(s.formula) }

// ChargeRow returns the row index of the charge row of the formula matrix.
func (s *System) ChargeRow() int { return len(s.elements) }

// ElementAmounts computes b = A·n: the amount of every element (and the total
// charge, last entry) carried by the species amounts n. Length of n must be
// NumSpecies.
func (s *System) ElementAmounts(n []float64) ([]float64, error) {
	if len(n) != len(s.species) {
		return nil, ErrDimensionMismatch
	}
	var b mat.VecDense
	b.MulVec(s.formula, mat.NewVecDense(len(n), n))

	out := make([]float64, b.Len())
	copy(out, b.RawVector().Data)

	return out, nil
}

// SortedSpeciesNames returns all species names in lexicographic order.
// Useful for deterministic reporting.
func (s *System) SortedSpeciesNames() []string {
	out := make([]string, 0, len(s.species))
	for _, sp := range s.species {
		out = append(out, sp.Name)
	}
	sort.Strings(out)

	return out
}
