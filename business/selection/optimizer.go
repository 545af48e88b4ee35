package selection

import (
	"fmt"
	"strings"

	"quoteOptimizer/domain"
)

// Constraint is a per-offer admission rule of the single-choice problem
//
//	maximize   Σ utility_i · x_i
//	subject to Σ x_i = 1,  x_i ∈ {0,1},  and every constraint on the chosen offer.
//
// Because exactly one x_i is 1, every constraint reduces to a predicate on
// that offer, and the problem is solved by filtering and taking the arg-max.
type Constraint interface {
	Admits(o domain.ScoredOffer) bool
	String() string
}

// MarginFloor admits offers whose quoted margin is at least the floor.
type MarginFloor float64

func (f MarginFloor) Admits(o domain.ScoredOffer) bool {
	return o.QuotedMarginPct >= float64(f)
}

func (f MarginFloor) String() string {
	return fmt.Sprintf("quoted_margin_pct >= %.3f", float64(f))
}

// Choose returns the index of the admitted offer with the highest utility.
// On equal utility the lowest index wins.
func Choose(offers []domain.ScoredOffer, constraints ...Constraint) (int, error) {
	best := -1
	for i, o := range offers {
		if !admits(o, constraints) {
			continue
		}
		if best < 0 || o.Utility > offers[best].Utility {
			best = i
		}
	}

	if len(offers) == 0 {
		return -1, fmt.Errorf("%w: no offers to choose from", domain.ErrInfeasible)
	}
	if best < 0 {
		return -1, fmt.Errorf("%w: no offer satisfies %s", domain.ErrInfeasible, describe(constraints))
	}

	return best, nil
}

func admits(o domain.ScoredOffer, constraints []Constraint) bool {
	for _, c := range constraints {
		if !c.Admits(o) {
			return false
		}
	}
	return true
}

func describe(constraints []Constraint) string {
	parts := make([]string, 0, len(constraints))
	for _, c := range constraints {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " and ")
}
