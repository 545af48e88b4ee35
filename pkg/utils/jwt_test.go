//go:build !integration

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("s3cret", "analyst-7", "ANALYST", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "analyst-7", claims.UserID)
	assert.Equal(t, "ANALYST", claims.Role)
}

func TestParseJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("s3cret", "analyst-7", "ANALYST", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other")
	assert.Error(t, err)

	expired, err := GenerateJWT("s3cret", "analyst-7", "ANALYST", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "s3cret")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.token", "s3cret")
	assert.Error(t, err)
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	_, err := GenerateJWT("", "analyst-7", "ANALYST", time.Hour)
	assert.EqualError(t, err, "missing jwt secret")
}
