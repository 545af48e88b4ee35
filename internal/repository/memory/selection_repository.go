package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"quoteOptimizer/business/history"
	"quoteOptimizer/domain"
)

// SelectionRepository keeps selection history in process memory. It is the
// default when no database is configured; history is lost on restart.
type SelectionRepository struct {
	mu      sync.RWMutex
	records map[string]domain.SelectionRecord
}

var _ history.SelectionRepository = (*SelectionRepository)(nil)

func NewSelectionRepository() *SelectionRepository {
	return &SelectionRepository{records: map[string]domain.SelectionRecord{}}
}

func (r *SelectionRepository) Create(ctx context.Context, record *domain.SelectionRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = *record
	return nil
}

func (r *SelectionRepository) FindByID(ctx context.Context, id string) (domain.SelectionRecord, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return domain.SelectionRecord{}, domain.ErrSelectionNotFound
	}
	return record, nil
}

func (r *SelectionRepository) FindRecent(ctx context.Context, limit int) ([]domain.SelectionRecord, error) {
	_ = ctx
	r.mu.RLock()
	out := make([]domain.SelectionRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
