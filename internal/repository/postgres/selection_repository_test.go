//go:build !integration

package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"quoteOptimizer/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestSelectionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSelectionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "selection_records"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.SelectionRecord{
		ID:          "5b0c6f57-5f3c-4f42-9d2f-2b7f7d0f6c11",
		MarginFloor: 0.2,
		SupplierID:  "2",
		Utility:     0.14,
		OfferCount:  2,
		Ranked:      []byte(`[]`),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectionRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSelectionRepository(db)

	id := "5b0c6f57-5f3c-4f42-9d2f-2b7f7d0f6c11"
	rows := sqlmock.NewRows([]string{"id", "margin_floor", "supplier_id", "p_win", "margin_pct", "utility", "offer_count", "estimator", "ranked", "created_at"}).
		AddRow(id, 0.2, "2", 0.5, 0.28, 0.14, 2, "xgb_mvp", []byte(`[]`), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "selection_records" WHERE id = $1`)).
		WillReturnRows(rows)

	record, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "2", record.SupplierID)
	assert.Equal(t, "xgb_mvp", record.Estimator)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectionRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSelectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "selection_records" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), "5b0c6f57-5f3c-4f42-9d2f-2b7f7d0f6c11")
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)
}
