package activity

import "sort"

// effectiveRadii holds the effective electrostatic radii of ionic species in
// angstrom, from Table 3 of Helgeson et al. (1981).
var effectiveRadii = map[string]float64{
	"H+": 3.08, "Fe+++": 3.46,
	"Li+": 1.64, "Al+++": 3.33,
	"Na+": 1.91, "Au+++": 3.72,
	"K+": 2.27, "La+++": 3.96,
	"Rb+": 2.41, "Gd+++": 3.79,
	"Cs+": 2.61, "In+++": 3.63,
	"NH4+": 2.31, "Ca+++": 3.44,
	"Ag+": 2.20, "F-": 1.33,
	"Au+": 2.31, "Cl-": 1.81,
	"Cu+": 1.90, "Br-": 1.96,
	"Mg++": 2.54, "I-": 2.20,
	"Sr++": 3.00, "OH-": 1.40,
	"Ca++": 2.87, "HS-": 1.84,
	"Ba++": 3.22, "NO3-": 2.81,
	"Pb++": 3.08, "HCO3-": 2.10,
	"Zn++": 2.62, "HSO4-": 2.37,
	"Cu++": 2.60, "ClO4-": 3.59,
	"Cd++": 2.85, "ReO4-": 4.23,
	"Hg++": 2.98, "SO4--": 3.15,
	"Fe++": 2.62, "CO3--": 2.81,
	"Mn++": 2.68,
}

// effectiveRadiiNames caches the sorted key set for deterministic scans.
var effectiveRadiiNames = sortedKeys(effectiveRadii)

// EffectiveIonicRadius returns the effective electrostatic radius of an
// ionic species in angstrom.
//
// The Helgeson (1981) table is consulted first, matching the species name
// across charge-suffix conventions. For species outside the table the
// radius is estimated from the charge alone, following the TOUGHREACT
// breakpoints: representative values per integer charge and a linear
// extrapolation beyond ±3.
func EffectiveIonicRadius(name string, charge float64) float64 {
	for _, key := range effectiveRadiiNames {
		if IsAlternativeChargedName(name, key) {
			return effectiveRadii[key]
		}
	}

	switch charge {
	case -1:
		return 1.81 // based on Cl-
	case -2:
		return 3.00 // rounded average of CO3-- and SO4--
	case -3:
		return 4.20 // straight line fit with charge
	case +1:
		return 2.31 // based on NH4+
	case +2:
		return 2.80 // rounded average of the +2 species in the table
	case +3:
		return 3.60 // rounded average of the +3 species in the table
	case +4:
		return 4.50 // HKF eq. 142
	}
	if charge < -3 {
		return -charge * 4.2 / 3.0 // linear extrapolation
	}

	return charge * 4.5 / 4.0 // linear extrapolation
}

// sortedKeys returns the keys of m in lexicographic order.
func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
