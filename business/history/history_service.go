package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"quoteOptimizer/domain"
	"quoteOptimizer/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 200
)

// SelectionRepository contract interface
type SelectionRepository interface {
	Create(ctx context.Context, record *domain.SelectionRecord) error
	FindByID(ctx context.Context, id string) (domain.SelectionRecord, error)
	FindRecent(ctx context.Context, limit int) ([]domain.SelectionRecord, error)
}

type Service struct {
	repo SelectionRepository
}

func NewService(repo SelectionRepository) *Service {
	return &Service{repo: repo}
}

// Record stores a successful selection and returns the stored record.
func (s *Service) Record(
	ctx context.Context,
	marginFloor float64,
	estimator string,
	best domain.BestOffer,
	ranked []domain.ScoredOffer,
) (domain.SelectionRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.SelectionRecord{}, fmt.Errorf("context error: %w", err)
	}

	raw, err := json.Marshal(ranked)
	if err != nil {
		return domain.SelectionRecord{}, fmt.Errorf("encode ranked offers: %w", err)
	}

	record := domain.SelectionRecord{
		ID:          uuid.NewString(),
		MarginFloor: marginFloor,
		SupplierID:  string(best.SupplierID),
		PWin:        best.PWin,
		MarginPct:   best.MarginPct,
		Utility:     best.Utility,
		OfferCount:  len(ranked),
		Estimator:   estimator,
		Ranked:      datatypes.JSON(raw),
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		logger.Error("Failed to record selection", "selection_id", record.ID, err)
		return domain.SelectionRecord{}, err
	}

	return record, nil
}

// Get returns a stored selection with its ranked table decoded.
func (s *Service) Get(ctx context.Context, id string) (domain.SelectionRecord, []domain.ScoredOffer, error) {
	if err := uuid.Validate(id); err != nil {
		return domain.SelectionRecord{}, nil, domain.ErrSelectionNotFound
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrSelectionNotFound) {
			logger.Error("Failed to find selection", "selection_id", id, err)
		}
		return domain.SelectionRecord{}, nil, err
	}

	var ranked []domain.ScoredOffer
	if len(record.Ranked) > 0 {
		if err := json.Unmarshal(record.Ranked, &ranked); err != nil {
			return domain.SelectionRecord{}, nil, fmt.Errorf("decode ranked offers: %w", err)
		}
	}

	return record, ranked, nil
}

// Recent lists the newest selections first.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.SelectionRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	limit = min(limit, maxRecentLimit)

	return s.repo.FindRecent(ctx, limit)
}
