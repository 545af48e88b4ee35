//go:build !integration

package memory

import (
	"context"
	"testing"
	"time"

	"quoteOptimizer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionRepository_CreateAndFind(t *testing.T) {
	repo := NewSelectionRepository()
	ctx := context.Background()

	rec := &domain.SelectionRecord{ID: "a", SupplierID: "2"}
	require.NoError(t, repo.Create(ctx, rec))
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", got.SupplierID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)
}

func TestSelectionRepository_FindRecent(t *testing.T) {
	repo := NewSelectionRepository()
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &domain.SelectionRecord{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := repo.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].ID)
	assert.Equal(t, "second", recent[1].ID)
}

func TestSelectionRepository_CreateCancelled(t *testing.T) {
	repo := NewSelectionRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Create(ctx, &domain.SelectionRecord{ID: "a"})
	assert.ErrorIs(t, err, context.Canceled)
}
