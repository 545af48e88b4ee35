package selection

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"quoteOptimizer/business/estimator"
	"quoteOptimizer/domain"
	"quoteOptimizer/pkg/logger"

	"github.com/shopspring/decimal"
)

// SummaryPrecision is the number of decimal places kept in BestOffer.
const SummaryPrecision = 3

// Engine selects the best offer of an RFQ batch. It owns one estimator for
// its whole lifetime and keeps no other state, so a single Engine can serve
// concurrent callers.
type Engine struct {
	est         Estimator
	marginFloor float64
}

// Open loads the estimator artifact at modelPath and builds an engine around it.
func Open(modelPath string, marginFloor float64) (*Engine, error) {
	if err := validateFloor(marginFloor); err != nil {
		return nil, err
	}

	pipeline, err := estimator.Load(modelPath)
	if err != nil {
		return nil, err
	}

	info := pipeline.Info()
	logger.Info("estimator loaded",
		"path", modelPath,
		"name", info.Name,
		"kind", info.Kind,
		"width", info.Width,
	)

	return &Engine{est: pipeline, marginFloor: marginFloor}, nil
}

func NewEngine(est Estimator, marginFloor float64) (*Engine, error) {
	if est == nil {
		return nil, fmt.Errorf("%w: estimator is nil", domain.ErrModelLoad)
	}
	if err := validateFloor(marginFloor); err != nil {
		return nil, err
	}
	return &Engine{est: est, marginFloor: marginFloor}, nil
}

// MarginFloor is the default floor the engine was configured with.
func (e *Engine) MarginFloor() float64 {
	return e.marginFloor
}

func (e *Engine) Estimator() Estimator {
	return e.est
}

// EstimatorInfo reports artifact metadata when the estimator exposes it.
func (e *Engine) EstimatorInfo() (domain.EstimatorInfo, bool) {
	d, ok := e.est.(interface{ Info() domain.EstimatorInfo })
	if !ok {
		return domain.EstimatorInfo{}, false
	}
	return d.Info(), true
}

// SelectBestOffer derives features, scores every offer, and picks the one
// with the highest p_win × quoted_margin_pct among offers meeting the floor.
// ranked holds every offer by descending utility, ties in input order.
//
// Errors wrap domain.ErrInvalidInput or domain.ErrInfeasible and are returned
// unchanged; estimator failures come back as plain errors.
func (e *Engine) SelectBestOffer(offers []domain.Offer, marginFloor float64) (domain.BestOffer, []domain.ScoredOffer, error) {
	SelectionBatchSize.Observe(float64(len(offers)))

	best, ranked, err := e.selectBestOffer(offers, marginFloor)
	outcome := outcomeOf(err)
	SelectionOutcomesTotal.WithLabelValues(outcome).Inc()

	if err != nil {
		logger.Debug("offer_selection",
			"offers", len(offers),
			"margin_floor", marginFloor,
			"outcome", outcome,
			err,
		)
		return domain.BestOffer{}, nil, err
	}

	logger.Debug("offer_selection",
		"offers", len(offers),
		"margin_floor", marginFloor,
		"outcome", outcome,
		"supplier_id", best.SupplierID,
		"utility", best.Utility,
	)

	return best, ranked, nil
}

func (e *Engine) selectBestOffer(offers []domain.Offer, marginFloor float64) (domain.BestOffer, []domain.ScoredOffer, error) {
	if err := validateFloor(marginFloor); err != nil {
		return domain.BestOffer{}, nil, err
	}
	if err := validateOffers(offers); err != nil {
		return domain.BestOffer{}, nil, err
	}

	derived, err := DeriveFeatures(offers)
	if err != nil {
		return domain.BestOffer{}, nil, err
	}

	probs, err := Score(e.est, derived)
	if err != nil {
		return domain.BestOffer{}, nil, err
	}

	floor := MarginFloor(marginFloor)
	scored := make([]domain.ScoredOffer, len(derived))
	for i, d := range derived {
		scored[i] = domain.ScoredOffer{
			DerivedOffer: d,
			Position:     i,
			PWin:         probs[i],
			Utility:      probs[i] * d.QuotedMarginPct,
		}
		scored[i].Eligible = floor.Admits(scored[i])
	}

	chosen, err := Choose(scored, floor)
	if err != nil {
		return domain.BestOffer{}, nil, err
	}
	scored[chosen].Selected = true
	best := summarize(scored[chosen])

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Utility > scored[j].Utility
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}

	return best, scored, nil
}

func summarize(o domain.ScoredOffer) domain.BestOffer {
	return domain.BestOffer{
		SupplierID: o.SupplierID,
		PWin:       round(o.PWin),
		MarginPct:  round(o.QuotedMarginPct),
		Utility:    round(o.Utility),
	}
}

func round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(SummaryPrecision).InexactFloat64()
}

func validateFloor(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return fmt.Errorf("%w: margin floor %v must be between 0 and 1", domain.ErrInvalidInput, f)
	}
	return nil
}

func validateOffers(offers []domain.Offer) error {
	for i, o := range offers {
		if !unitInterval(o.QuotedMarginPct) {
			return fmt.Errorf("%w: offer %d: quoted_margin_pct must be between 0 and 1", domain.ErrInvalidInput, i)
		}
		if !unitInterval(o.OnTimeRate) {
			return fmt.Errorf("%w: offer %d: on_time_rate must be between 0 and 1", domain.ErrInvalidInput, i)
		}
	}
	return nil
}

func unitInterval(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSelected
	case errors.Is(err, domain.ErrInvalidInput):
		return outcomeInvalidInput
	case errors.Is(err, domain.ErrInfeasible):
		return outcomeInfeasible
	default:
		return outcomeEstimatorError
	}
}
