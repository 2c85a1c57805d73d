// Package core defines the central Element, Species, Phase and System types,
// and provides the immutable chemical catalog plus the mutable State that
// equilibrium and kinetics calculations operate on.
//
// A System is built once from an element catalog and a list of phases; after
// construction it never changes, so it can be shared freely across goroutines.
// All per-calculation data (temperature, pressure, species amounts) lives in
// State values owned by the caller.
//
// This file declares Element, Species, Phase, sentinel errors, and the
// validation helpers shared by the System constructor.
//
// Errors:
//
//	ErrNoPhases          - system constructed without phases.
//	ErrEmptyPhase        - a phase carries no species.
//	ErrEmptyName         - element, species or phase name is the empty string.
//	ErrDuplicateElement  - element symbol repeated in the catalog.
//	ErrDuplicatePhase    - phase name repeated across the system.
//	ErrDuplicateSpecies  - species name repeated across the system.
//	ErrUnknownElement    - species formula references a symbol outside the catalog.
//	ErrUnknownSolvent    - phase solvent does not name one of its species.
//	ErrBadMolarMass      - element molar mass is not positive and finite.
//	ErrBadComposition    - formula coefficient is negative or non-finite.
//	ErrBadCharge         - species charge is non-finite.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for catalog construction and lookups.
var (
	// ErrNoPhases indicates NewSystem was called without any phase.
	ErrNoPhases = errors.New("core: system needs at least one phase")

	// ErrEmptyPhase indicates a phase was declared with no species.
	ErrEmptyPhase = errors.New("core: phase has no species")

	// ErrEmptyName indicates an element, species or phase with an empty name.
	ErrEmptyName = errors.New("core: empty name")

	// ErrDuplicateElement indicates a repeated element symbol in the catalog.
	ErrDuplicateElement = errors.New("core: duplicate element name")

	// ErrDuplicatePhase indicates a repeated phase name.
	ErrDuplicatePhase = errors.New("core: duplicate phase name")

	// ErrDuplicateSpecies indicates a repeated species name across the system.
	ErrDuplicateSpecies = errors.New("core: duplicate species name")

	// ErrUnknownElement indicates a species formula references a symbol that is
	// not part of the element catalog.
	ErrUnknownElement = errors.New("core: species references unknown element")

	// ErrUnknownSolvent indicates Phase.Solvent does not name a species of the phase.
	ErrUnknownSolvent = errors.New("core: solvent is not a species of its phase")

	// ErrBadMolarMass indicates a non-positive or non-finite element molar mass.
	ErrBadMolarMass = errors.New("core: element molar mass must be positive and finite")

	// ErrBadComposition indicates a negative or non-finite formula coefficient.
	ErrBadComposition = errors.New("core: formula coefficients must be non-negative and finite")

	// ErrBadCharge indicates a non-finite species charge.
	ErrBadCharge = errors.New("core: species charge must be finite")

	// ErrElementNotFound indicates a lookup by element name failed.
	ErrElementNotFound = errors.New("core: element not found")

	// ErrSpeciesNotFound indicates a lookup by species name failed.
	ErrSpeciesNotFound = errors.New("core: species not found")

	// ErrPhaseNotFound indicates a lookup by phase name failed.
	ErrPhaseNotFound = errors.New("core: phase not found")

	// ErrBadTemperature indicates a non-positive or non-finite temperature.
	ErrBadTemperature = errors.New("core: temperature must be positive and finite")

	// ErrBadPressure indicates a non-positive or non-finite pressure.
	ErrBadPressure = errors.New("core: pressure must be positive and finite")

	// ErrBadAmount indicates a negative or non-finite species amount.
	ErrBadAmount = errors.New("core: species amount must be non-negative and finite")

	// ErrDimensionMismatch indicates a vector whose length does not match the system.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrPartitionOverlap indicates a species assigned to both the kinetic and
	// the inert set of a Partition.
	ErrPartitionOverlap = errors.New("core: species assigned to both kinetic and inert sets")

	// ErrEmptyEquilibrium indicates a Partition that leaves no species in the
	// equilibrium set.
	ErrEmptyEquilibrium = errors.New("core: partition leaves no equilibrium species")
)

// Element represents a chemical element of the catalog.
type Element struct {
	// Name is the element symbol, e.g. "H", "O", "Na".
	Name string

	// MolarMass is the element molar mass in kg/mol.
	MolarMass float64
}

// Species represents one chemical species of a phase.
//
// A Species is described by its elemental formula and electrical charge; its
// molar mass is derived from the element catalog when the System is built.
type Species struct {
	// Name uniquely identifies the species within its System, e.g. "H2O(l)", "Na+".
	Name string

	// Elements maps element symbol to the stoichiometric coefficient of the
	// species formula. Symbols must belong to the system's element catalog.
	Elements map[string]float64

	// Charge is the electrical charge in elementary units (e.g. -2 for SO4--).
	Charge float64

	// MolarMass is the species molar mass in kg/mol. It is computed from the
	// element catalog by NewSystem; a value set by the caller is overwritten.
	MolarMass float64
}

// Phase represents a homogeneous phase: a named, ordered set of species.
type Phase struct {
	// Name uniquely identifies the phase within its System, e.g. "Aqueous".
	Name string

	// Species lists the phase members. Their order is preserved and defines
	// the species indexing of the System.
	Species []Species

	// Solvent optionally names the solvent species of the phase (used by
	// aqueous activity models). Empty means the phase has no designated solvent.
	Solvent string
}

// validName reports whether a catalog name is usable.
func validName(name string) bool { return name != "" }

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
