package activity

import (
	"fmt"
	"math"
)

// DebyeHuckel — extended Debye–Hückel activity model for aqueous phases.
//
// Description:
//
//	Computes activity coefficients of dilute electrolyte solutions from the
//	effective ionic strength, with the Helgeson–Kirkham–Flowers form of the
//	Debye–Hückel coefficients and the WATEQ/PHREEQC b·I extension.
//
// Model outline, for ionic strength I (molal), water molar fraction x_w:
//  1. A = 1.824829238e6 · √ρ / (T·ε)^1.5 and B = 50.29158649 · √ρ / √(T·ε),
//     with ρ the water density in g/cm³ and ε its dielectric constant.
//  2. Charged species i with molality m_i > 0:
//     log10 γ_i = −A·z_i²·√I / (1 + å_i·B·√I) + b_i·I + log10 x_w,
//     where å_i comes from the parameter table (any name convention),
//     from the explicit table default if one was set, and otherwise from
//     the Reed (1982) estimate 2(r_eff + k|z|)/(|z|+1) with k = 1.91 for
//     anions, 1.81 for cations, and r_eff the Helgeson effective radius.
//     Zero-molality ions keep the molality-scale conversion ln γ = ln x_w.
//  3. Neutral solutes: log10 γ = b·I + log10 x_w.
//  4. Solute activities: ln a_i = ln γ_i + ln m_i.
//  5. Water by osmotic coefficient: for every charged species with
//     m_i > 0, Λ = 1 + å·B·√I, σ = 3/(å·B·√I)³ · (Λ − 1/Λ − 2 ln Λ),
//     ψ = A·z²·√I·σ/3 + α with α = x_w/(1−x_w)·log10 x_w, φ += m_i·ψ;
//     then ln a_w = ln(10)·M_w·φ. When x_w = 1 exactly, ln a_w = ln x_w.
//  6. Activity constants: ln(55.508472) for solutes, zero for water.
//
// The model reports values only: Result.DLnActivities stays nil, and
// consumers needing curvature fall back to a diagonal approximation.
//
// Errors:
//   - ErrNilState, ErrNoSolvent — contract violations.
//   - ErrBadWaterProps — property source returned unusable values.
type DebyeHuckel struct {
	params Params
	water  WaterPropsFunc
}

// DebyeHuckelOption configures a DebyeHuckel model at construction.
type DebyeHuckelOption func(*DebyeHuckel)

// WithParams replaces the coefficient tables (default: NewParams, the
// PHREEQC v3 set).
func WithParams(p Params) DebyeHuckelOption {
	return func(m *DebyeHuckel) { m.params = p }
}

// WithWaterProps replaces the water property source (default:
// ReferenceWaterProps).
func WithWaterProps(fn WaterPropsFunc) DebyeHuckelOption {
	return func(m *DebyeHuckel) {
		if fn != nil {
			m.water = fn
		}
	}
}

// NewDebyeHuckel builds the model with the given options.
func NewDebyeHuckel(opts ...DebyeHuckelOption) *DebyeHuckel {
	m := &DebyeHuckel{params: NewParams(), water: ReferenceWaterProps}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Params returns the coefficient tables in use (shared storage).
func (m *DebyeHuckel) Params() Params { return m.params }

// lnMolalityStd is ln(55.508472), the molality-scale activity constant.
var lnMolalityStd = math.Log(55.508472)

// Evaluate computes activities for an aqueous PhaseState.
// Complexity: O(n·k) for n species and k parameter-table entries.
func (m *DebyeHuckel) Evaluate(s *PhaseState) (Result, error) {
	if s == nil {
		return Result{}, ErrNilState
	}
	iw := s.Solvent
	if iw < 0 || s.M == nil {
		return Result{}, ErrNoSolvent
	}

	props, err := m.water(s.T, s.P)
	if err != nil {
		return Result{}, fmt.Errorf("activity: water properties: %w", err)
	}
	if !isFinite(props.Density) || props.Density <= 0 || !isFinite(props.Epsilon) || props.Epsilon <= 0 {
		return Result{}, fmt.Errorf("%w: density=%v epsilon=%v", ErrBadWaterProps, props.Density, props.Epsilon)
	}

	// HKF Debye–Hückel coefficients; density in g/cm³.
	rho := props.Density / 1000
	sqrtRho := math.Sqrt(rho)
	tEps := s.T * props.Epsilon
	sqrtTEps := math.Sqrt(tEps)
	coefA := 1.824829238e6 * sqrtRho / (tEps * sqrtTEps)
	coefB := 50.29158649 * sqrtRho / sqrtTEps

	ionic := s.IonicStrength
	sqrtI := math.Sqrt(ionic)
	xw := s.X[iw]
	lnXw := math.Log(xw)
	log10Xw := math.Log10(xw)

	// Osmotic-coefficient accumulator and its alpha term.
	var alpha, phi float64
	if xw != 1 {
		alpha = xw / (1 - xw) * log10Xw
	}

	res := newResult(len(s.N))
	for i := range s.N {
		if i == iw {
			continue
		}
		z := s.Charges[i]
		if z == 0 {
			res.LnActivityCoefficients[i] = math.Ln10*m.params.BNeutral(s.Names[i])*ionic + lnXw
			continue
		}
		if s.M[i] == 0 {
			// Absent ions keep the plain molality-scale conversion.
			res.LnActivityCoefficients[i] = lnXw
			continue
		}

		size := m.ionSize(s.Names[i], z)
		lam := 1 + size*coefB*sqrtI
		log10g := -(coefA*z*z*sqrtI)/lam + m.params.BIon(s.Names[i])*ionic + log10Xw
		res.LnActivityCoefficients[i] = log10g * math.Ln10

		if xw != 1 {
			psi := coefA*z*z*sqrtI*osmoticSigma(size*coefB*sqrtI, lam)/3 + alpha
			phi += s.M[i] * psi
		}
	}

	// Solute activities on the molality scale. Zero molality gives -Inf,
	// the honest value for an absent species.
	for i := range s.N {
		res.LnActivities[i] = res.LnActivityCoefficients[i] + math.Log(s.M[i])
		res.LnActivityConstants[i] = lnMolalityStd
	}

	// Water on the molar-fraction scale.
	if xw != 1 {
		res.LnActivities[iw] = math.Ln10 * WaterMolarMass * phi
	} else {
		res.LnActivities[iw] = lnXw
	}
	res.LnActivityCoefficients[iw] = res.LnActivities[iw] - lnXw
	res.LnActivityConstants[iw] = 0

	return res, nil
}

// ionSize resolves the Debye–Hückel ion-size parameter å (angstrom):
// parameter table first, explicit table default next, Reed (1982) estimate
// from the effective electrostatic radius last.
func (m *DebyeHuckel) ionSize(name string, z float64) float64 {
	if v, ok := m.params.lookupAIon(name); ok {
		return v
	}
	if m.params.aionDefaultSet {
		return m.params.aionDefault
	}

	r := EffectiveIonicRadius(name, z)
	if z < 0 {
		return 2 * (r + 1.91*math.Abs(z)) / (math.Abs(z) + 1)
	}

	return 2 * (r + 1.81*math.Abs(z)) / (math.Abs(z) + 1)
}

// osmoticSigma evaluates σ(x) = 3/x³·(Λ − 1/Λ − 2 ln Λ) with Λ = 1 + x,
// continued with its limit σ → 1 as x → 0 so the limiting law (å = 0)
// stays finite.
func osmoticSigma(x, lam float64) float64 {
	if x == 0 {
		return 1
	}

	return 3 / (x * x * x) * (lam - 1/lam - 2*math.Log(lam))
}
