package postgres

import (
	"context"
	"errors"
	"fmt"

	"quoteOptimizer/business/history"
	"quoteOptimizer/domain"

	"gorm.io/gorm"
)

type SelectionRepository struct {
	DB *gorm.DB
}

var _ history.SelectionRepository = (*SelectionRepository)(nil)

func NewSelectionRepository(db *gorm.DB) *SelectionRepository {
	return &SelectionRepository{
		DB: db,
	}
}

func (r *SelectionRepository) Create(ctx context.Context, record *domain.SelectionRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create selection record: %w", err)
	}

	return nil
}

func (r *SelectionRepository) FindByID(ctx context.Context, id string) (domain.SelectionRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.SelectionRecord{}, fmt.Errorf("context error: %w", err)
	}

	var record domain.SelectionRecord

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SelectionRecord{}, domain.ErrSelectionNotFound
		}
		return domain.SelectionRecord{}, fmt.Errorf("failed to find selection record: %w", err)
	}

	return record, nil
}

func (r *SelectionRepository) FindRecent(ctx context.Context, limit int) ([]domain.SelectionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.SelectionRecord
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find selection records: %w", err)
	}

	return records, nil
}
