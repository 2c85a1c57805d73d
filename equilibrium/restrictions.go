package equilibrium

import (
	"fmt"

	"github.com/gibbslab/gibbs/core"
)

// Restrictions layer per-species bounds on top of one solve without
// touching the problem or the partition. Build them fluently:
//
//	r := equilibrium.NewRestrictions().
//	    CannotExist("CH4(g)").
//	    Fix("Calcite", 0.5)
//
// and pass the result to Solver.SolveRestricted. Names resolve at solve
// time against the solver's equilibrium set; when one species collects
// several rules the most restrictive wins: lower bounds are applied first,
// then fixed amounts, then CannotExist.
type Restrictions struct {
	zero  []string
	fixed map[string]float64
	lower map[string]float64
}

// NewRestrictions returns an empty restriction set.
func NewRestrictions() *Restrictions {
	return &Restrictions{
		fixed: make(map[string]float64),
		lower: make(map[string]float64),
	}
}

// CannotExist forces the named species to zero amount.
func (r *Restrictions) CannotExist(species ...string) *Restrictions {
	r.zero = append(r.zero, species...)

	return r
}

// Fix freezes the named species at exactly amount mol.
func (r *Restrictions) Fix(species string, amount float64) *Restrictions {
	r.fixed[species] = amount

	return r
}

// SetLowerBound keeps the named species at or above bound mol.
func (r *Restrictions) SetLowerBound(species string, bound float64) *Restrictions {
	r.lower[species] = bound

	return r
}

// apply resolves the species names against pos (global species index →
// position in the solve vector) and writes the bounds. A nil receiver is a
// valid empty restriction set.
func (r *Restrictions) apply(sys *core.System, pos map[int]int, lower, upper []float64) error {
	if r == nil {
		return nil
	}

	resolve := func(name string) (int, error) {
		i, ok := sys.SpeciesIndex(name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", core.ErrSpeciesNotFound, name)
		}
		j, ok := pos[i]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrSpeciesNotFree, name)
		}

		return j, nil
	}

	for name, bound := range r.lower {
		j, err := resolve(name)
		if err != nil {
			return err
		}
		if !finite(bound) || bound < 0 {
			return fmt.Errorf("%w: lower bound of %q at %v", core.ErrBadAmount, name, bound)
		}
		lower[j] = bound
	}
	for name, amount := range r.fixed {
		j, err := resolve(name)
		if err != nil {
			return err
		}
		if !finite(amount) || amount < 0 {
			return fmt.Errorf("%w: fixed amount of %q at %v", core.ErrBadAmount, name, amount)
		}
		lower[j], upper[j] = amount, amount
	}
	for _, name := range r.zero {
		j, err := resolve(name)
		if err != nil {
			return err
		}
		lower[j], upper[j] = 0, 0
	}

	return nil
}
