//go:build !integration

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MARGIN_FLOOR", "")
	t.Setenv("HISTORY_STORE", "")
	t.Setenv("MODEL_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.20, cfg.Model.MarginFloor)
	assert.Equal(t, "model.json", cfg.Model.Path)
	assert.Equal(t, HistoryStoreMemory, cfg.History.Store)
}

func TestLoad_RejectsOutOfRangeFloor(t *testing.T) {
	t.Setenv("MARGIN_FLOOR", "1.5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PostgresNeedsPassword(t *testing.T) {
	t.Setenv("MARGIN_FLOOR", "0.25")
	t.Setenv("HISTORY_STORE", "postgres")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.EqualError(t, err, "missing database password")

	t.Setenv("DB_PASSWORD", "secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Model.MarginFloor)
	assert.Equal(t, HistoryStorePostgres, cfg.History.Store)
}
