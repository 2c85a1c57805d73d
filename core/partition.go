package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Partition splits the species of a System into three disjoint, exhaustive
// sets:
//
//   - equilibrium — species whose amounts the equilibrium solver may vary;
//   - kinetic     — species governed by rate laws, frozen during equilibration;
//   - inert       — species that never react, frozen during equilibration.
//
// The split is expressed with species indices sorted ascending, and the
// formula matrix restricted to the equilibrium columns is prepared once at
// construction. Excluded species still contribute to mass balance: their
// element content must be accounted for in the targets the caller supplies.
//
// With no options every species is in equilibrium.
type Partition struct {
	sys *System

	equilibrium []int
	kinetic     []int
	inert       []int

	formula *mat.Dense // all rows of the system matrix, equilibrium columns only
}

// partitionPlan accumulates the raw option inputs before resolution.
type partitionPlan struct {
	kineticSpecies []string
	inertSpecies   []string
	kineticPhases  []string
	inertPhases    []string
}

// PartitionOption configures the species split performed by NewPartition.
type PartitionOption func(*partitionPlan)

// WithKineticSpecies marks the named species as kinetic.
func WithKineticSpecies(names ...string) PartitionOption {
	return func(p *partitionPlan) { p.kineticSpecies = append(p.kineticSpecies, names...) }
}

// WithInertSpecies marks the named species as inert.
func WithInertSpecies(names ...string) PartitionOption {
	return func(p *partitionPlan) { p.inertSpecies = append(p.inertSpecies, names...) }
}

// WithKineticPhases marks every species of the named phases as kinetic.
func WithKineticPhases(names ...string) PartitionOption {
	return func(p *partitionPlan) { p.kineticPhases = append(p.kineticPhases, names...) }
}

// WithInertPhases marks every species of the named phases as inert.
func WithInertPhases(names ...string) PartitionOption {
	return func(p *partitionPlan) { p.inertPhases = append(p.inertPhases, names...) }
}

// NewPartition resolves the options against sys and builds the Partition.
//
// Rules:
//   - unknown species or phase names fail with ErrSpeciesNotFound / ErrPhaseNotFound;
//   - a species claimed by both the kinetic and the inert side fails with
//     ErrPartitionOverlap (naming it twice on the same side is fine);
//   - the remaining species form the equilibrium set, which must be
//     non-empty (ErrEmptyEquilibrium).
//
// The same inputs always produce the same sets and restricted matrix.
// Complexity: O(N + E·Ne) for N species and Ne equilibrium columns.
func NewPartition(sys *System, opts ...PartitionOption) (*Partition, error) {
	var plan partitionPlan
	for _, opt := range opts {
		opt(&plan)
	}

	kinetic, err := resolveSet(sys, plan.kineticSpecies, plan.kineticPhases)
	if err != nil {
		return nil, err
	}
	inert, err := resolveSet(sys, plan.inertSpecies, plan.inertPhases)
	if err != nil {
		return nil, err
	}
	for i := range kinetic {
		if inert[i] {
			return nil, fmt.Errorf("%w: %q", ErrPartitionOverlap, sys.Species(i).Name)
		}
	}

	p := &Partition{sys: sys}
	for i := 0; i < sys.NumSpecies(); i++ {
		switch {
		case kinetic[i]:
			p.kinetic = append(p.kinetic, i)
		case inert[i]:
			p.inert = append(p.inert, i)
		default:
			p.equilibrium = append(p.equilibrium, i)
		}
	}
	if len(p.equilibrium) == 0 {
		return nil, ErrEmptyEquilibrium
	}

	// Restrict the formula matrix to the equilibrium columns, keeping every row.
	rows := sys.NumElements() + 1
	p.formula = mat.NewDense(rows, len(p.equilibrium), nil)
	full := sys.formula
	for jj, j := range p.equilibrium {
		for r := 0; r < rows; r++ {
			p.formula.Set(r, jj, full.At(r, j))
		}
	}

	return p, nil
}

// resolveSet turns species and phase name lists into a membership map over
// global species indices.
func resolveSet(sys *System, species, phases []string) (map[int]bool, error) {
	set := make(map[int]bool)
	for _, name := range species {
		i, ok := sys.SpeciesIndex(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSpeciesNotFound, name)
		}
		set[i] = true
	}
	for _, name := range phases {
		ip, ok := sys.PhaseIndex(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPhaseNotFound, name)
		}
		for _, i := range sys.SpeciesIndicesInPhase(ip) {
			set[i] = true
		}
	}

	return set, nil
}

// System returns the catalog this partition refers to.
func (p *Partition) System() *System { return p.sys }

// EquilibriumSpecies returns a copy of the sorted equilibrium indices.
func (p *Partition) EquilibriumSpecies() []int { return copyInts(p.equilibrium) }

// KineticSpecies returns a copy of the sorted kinetic indices.
func (p *Partition) KineticSpecies() []int { return copyInts(p.kinetic) }

// InertSpecies returns a copy of the sorted inert indices.
func (p *Partition) InertSpecies() []int { return copyInts(p.inert) }

// NumEquilibriumSpecies returns the size of the equilibrium set.
func (p *Partition) NumEquilibriumSpecies() int { return len(p.equilibrium) }

// NumKineticSpecies returns the size of the kinetic set.
func (p *Partition) NumKineticSpecies() int { return len(p.kinetic) }

// NumInertSpecies returns the size of the inert set.
func (p *Partition) NumInertSpecies() int { return len(p.inert) }

// EquilibriumFormulaMatrix returns a copy of the formula matrix restricted to
// the equilibrium columns: same rows as System.FormulaMatrix (elements plus
// charge), columns following the equilibrium index order.
func (p *Partition) EquilibriumFormulaMatrix() *mat.Dense { return mat.DenseCopyOf(p.formula) }

// copyInts returns an independent sorted copy of xs.
func copyInts(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	sort.Ints(out)

	return out
}
