// Package core provides the immutable chemical catalog (System) and the
// mutable calculation state (State) that the rest of the module builds on.
//
// The catalog describes WHAT can exist: elements, species grouped into
// phases, charges, and the formula matrix tying them together. The state
// describes HOW MUCH exists right now: temperature, pressure and species
// amounts. Keeping the two apart lets many calculations share one catalog
// without locking.
//
//   - Immutable arena — NewSystem copies and validates everything once;
//     accessors hand out copies, never internal storage.
//   - Stable indexing — species are numbered globally in phase order;
//     name→index maps are built at construction and never change.
//   - Formula matrix — one row per element plus a trailing charge row,
//     one column per species, as a gonum *mat.Dense.
//   - Partition — split species into equilibrium / kinetic / inert sets
//     and restrict the formula matrix to the equilibrium columns.
//
// Construction:
//
//	sys, err := core.NewSystem(
//	    []core.Element{{Name: "H", MolarMass: 0.001008}, {Name: "O", MolarMass: 0.015999}},
//	    core.Phase{
//	        Name:    "Aqueous",
//	        Solvent: "H2O(l)",
//	        Species: []core.Species{
//	            {Name: "H2O(l)", Elements: map[string]float64{"H": 2, "O": 1}},
//	            {Name: "H+", Elements: map[string]float64{"H": 1}, Charge: +1},
//	            {Name: "OH-", Elements: map[string]float64{"O": 1, "H": 1}, Charge: -1},
//	        },
//	    },
//	)
//
// State lifecycle:
//
//	st := core.NewState(sys)          // 298.15 K, 1e5 Pa, all amounts zero
//	_ = st.SetTemperature(330)        // K
//	_ = st.SetSpeciesAmountByName("H2O(l)", 55.5)
//	b := st.ElementAmounts()          // element + charge totals A·n
//
// Partition options (PartitionOption):
//
//	– WithKineticSpecies(names...) / WithInertSpecies(names...)
//	    Exclude individual species from the equilibrium set.
//	– WithKineticPhases(names...) / WithInertPhases(names...)
//	    Exclude whole phases at once.
//
// Excluded species stay frozen during equilibration but still count toward
// mass balance: the element targets the caller supplies must include their
// content.
//
// Errors: see the sentinel block in types.go; all are matched with errors.Is.
package core
