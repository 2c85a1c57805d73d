package activity

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IdealSolution is the ideal molar-fraction model: ln a_i = ln x_i, unit
// activity coefficients, zero activity constants. It serves gases, melts
// and condensed mixtures without better information.
//
// The model propagates exact composition derivatives:
//
//	∂ln a_i/∂n_j = δ_ij/n_i − 1/n_total
//
// which are finite only for strictly positive amounts; zero amounts yield
// the honest ±Inf.
type IdealSolution struct{}

// Evaluate computes ideal molar-fraction activities.
// Complexity: O(n²) due to the derivative matrix.
func (IdealSolution) Evaluate(s *PhaseState) (Result, error) {
	if s == nil {
		return Result{}, ErrNilState
	}

	n := len(s.N)
	res := newResult(n)
	for i, x := range s.X {
		res.LnActivities[i] = math.Log(x)
	}

	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -1 / s.NTotal
			if i == j {
				v += 1 / s.N[i]
			}
			d.Set(i, j, v)
		}
	}
	res.DLnActivities = d

	return res, nil
}

// IdealAqueous is the ideal aqueous model: solutes on the molality scale
// (ln a_i = ln m_i, activity constant ln 55.508472), the solvent on the
// molar-fraction scale (ln a_w = ln x_w, activity constant zero). Activity
// coefficients are unity throughout.
//
// Exact composition derivatives are propagated:
//
//	solutes  ∂ln a_i/∂n_j = δ_ij/n_i − δ_wj/n_w
//	solvent  ∂ln a_w/∂n_j = δ_wj/n_w − 1/n_total
type IdealAqueous struct{}

// Evaluate computes ideal aqueous activities. The PhaseState must come
// from NewAqueousState (designated solvent, molalities present).
// Complexity: O(n²) due to the derivative matrix.
func (IdealAqueous) Evaluate(s *PhaseState) (Result, error) {
	if s == nil {
		return Result{}, ErrNilState
	}
	iw := s.Solvent
	if iw < 0 || s.M == nil {
		return Result{}, ErrNoSolvent
	}

	n := len(s.N)
	res := newResult(n)
	for i := range s.N {
		if i == iw {
			res.LnActivities[i] = math.Log(s.X[i])
			res.LnActivityConstants[i] = 0
			continue
		}
		res.LnActivities[i] = math.Log(s.M[i])
		res.LnActivityConstants[i] = lnMolalityStd
	}

	nw := s.N[iw]
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var v float64
			if i == iw {
				if j == iw {
					v += 1 / nw
				}
				v -= 1 / s.NTotal
			} else {
				if i == j {
					v += 1 / s.N[i]
				}
				if j == iw {
					v -= 1 / nw
				}
			}
			d.Set(i, j, v)
		}
	}
	res.DLnActivities = d

	return res, nil
}
