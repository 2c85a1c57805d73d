// Package activity provides the activity-model contract used by the
// equilibrium solver, together with reference implementations: ideal
// solution, ideal aqueous solution, and an extended Debye–Hückel model for
// dilute electrolytes.
//
// A Model maps one phase's composition at (T, P) to natural-log activities:
//
//	ln a_i = ln γ_i + ln(concentration_i) + scale conversions
//
// packed in a Result together with activity coefficients and the activity
// constants that tie the concentration scale to the standard state. Models
// are stateless: Evaluate receives a freshly computed PhaseState and returns
// a value, so one model instance can serve many goroutines.
//
// Concentration scales follow aqueous-geochemistry convention:
//
//   - solutes on the molality scale, activity constant ln(55.508472);
//   - the solvent on the molar-fraction scale, activity constant zero;
//   - non-aqueous phases on the molar-fraction scale throughout.
//
// Ideal models supply the composition derivatives ∂ln a_i/∂n_j in
// Result.DLnActivities; the Debye–Hückel model reports values only
// (DLnActivities nil), and consumers needing curvature fall back to a
// diagonal approximation.
//
// The Debye–Hückel implementation follows the Helgeson–Kirkham–Flowers
// parameterisation: coefficients A and B from the water density and
// dielectric constant, per-ion size å and b parameters from configurable
// tables (PHREEQC v3 preloaded; WATEQ4F and Kielland 1937 available), the
// Reed (1982) ion-size estimate from effective electrostatic radii when a
// table has no entry, and an osmotic-coefficient path for the water
// activity. Ion names are matched across charge-suffix conventions, so
// "Fe+++", "Fe+3" and "Fe[3+]" hit the same table rows.
package activity
