//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_KeyValuePairsAndErrors(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	SetOutput(&buf)

	Info("selection done", "supplier_id", "S-2", "offers", 3, errors.New("boom"), "dangling")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "selection done", line["message"])
	assert.Equal(t, "S-2", line["supplier_id"])
	assert.EqualValues(t, 3, line["offers"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "dangling", line["arg5"])
}

func TestInit_RejectsUnknownLevel(t *testing.T) {
	err := Init(Config{Level: "chatty"})
	assert.Error(t, err)
}
