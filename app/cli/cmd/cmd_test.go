//go:build !integration

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quoteOptimizer/domain"
	"quoteOptimizer/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var artifact = filepath.Join("..", "..", "..", "business", "estimator", "testdata", "logistic.json")

const offersCSV = "supplier_id,unit_price,lead_time_days,quoted_margin_pct,quantity,product_type,tier,region,on_time_rate\n" +
	"1,1.30,5,0.20,1000,flyer,A,NL,0.95\n" +
	"2,1.50,4,0.28,1000,flyer,A,NL,0.95\n"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MODEL_PATH", "")
	t.Setenv("MARGIN_FLOOR", "")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeOffers(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "offers.csv")
	require.NoError(t, os.WriteFile(path, []byte(offersCSV), 0o600))
	return path
}

func TestSelectCmd(t *testing.T) {
	offers := writeOffers(t)
	ranked := filepath.Join(t.TempDir(), "ranked_offers.csv")

	out, err := run(t, "select", "--model", artifact, "--csv", ranked, offers)
	require.NoError(t, err)
	assert.Contains(t, out, "Best offer: supplier 2")
	assert.Contains(t, out, "below floor")

	raw, err := os.ReadFile(ranked)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "Supplier,"))
}

func TestSelectCmd_Infeasible(t *testing.T) {
	_, err := run(t, "select", "--model", artifact, "--floor", "0.3", writeOffers(t))
	assert.ErrorIs(t, err, domain.ErrInfeasible)
}

func TestSelectCmd_FloorFromEnv(t *testing.T) {
	offers := writeOffers(t)
	t.Setenv("MARGIN_FLOOR", "0.3")

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"select", "--model", artifact, offers})
	assert.ErrorIs(t, root.Execute(), domain.ErrInfeasible)
}

func TestSelectCmd_MissingModel(t *testing.T) {
	_, err := run(t, "select", "--model", filepath.Join(t.TempDir(), "none.json"), writeOffers(t))
	assert.ErrorIs(t, err, domain.ErrModelLoad)
}

func TestInspectCmd(t *testing.T) {
	out, err := run(t, "inspect", "--model", artifact)
	require.NoError(t, err)
	assert.Contains(t, out, "name: logreg_price_only")
	assert.Contains(t, out, "kind: logistic")
	assert.Contains(t, out, "- price_delta_pct")
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	out, err := run(t, "token", "--user", "analyst-7")
	require.NoError(t, err)

	claims, err := utils.ParseJWT(strings.TrimSpace(out), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "analyst-7", claims.UserID)
	assert.Equal(t, "ANALYST", claims.Role)

	_, err = run(t, "token")
	assert.EqualError(t, err, "--user is required")
}
