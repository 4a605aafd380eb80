package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}

	err := app.Run(append([]string{"report"}, args...))
	return out.String(), err
}

func TestSummary(t *testing.T) {
	out, err := runApp(t, "summary")
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 57750.0, summary["total_revenue"])
	assert.Equal(t, -69450.0, summary["net_profit"])
	assert.Equal(t, 0.89, summary["overall_roas"])
	assert.Equal(t, 76.0, summary["inventory_units"])
}

func TestDiscount(t *testing.T) {
	out, err := runApp(t, "discount", "--drop", "launch-collection", "--discount", "30", "--lift", "50")
	require.NoError(t, err)

	var impact domain.DiscountImpact
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &impact))
	assert.Equal(t, 38, impact.UnitsToSell)
	assert.InDelta(t, 68.0, impact.BreakEvenDiscount, 0.001)

	_, err = runApp(t, "discount", "--drop", "nao-existe")
	assert.Error(t, err)
}

func writeSnapshot(t *testing.T, snapshot *domain.Snapshot) string {
	t.Helper()

	data, err := jsoniter.Marshal(snapshot)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestAnalysisFromInputFile(t *testing.T) {
	snapshot := &domain.Snapshot{
		Drops: []*domain.Drop{
			{
				ID:   "d1",
				Name: "Drop",
				Products: []*domain.Product{
					{ID: "p1", Name: "Tee", Price: 100, COGS: 40, InitialStock: 10, MonthlyData: map[string]domain.PeriodRecord{
						"2024-03": {Sold: 9},
					}},
				},
			},
		},
	}
	path := writeSnapshot(t, snapshot)

	out, err := runApp(t, "recommendations", "--input", path)
	require.NoError(t, err)

	var recs []*domain.Recommendation
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "RESTOCK: Tee", recs[0].Title)

	_, err = runApp(t, "analysis", "--input", filepath.Join(t.TempDir(), "inexistente.json"))
	assert.Error(t, err)
}

func TestInputFlagPosition(t *testing.T) {
	path := writeSnapshot(t, &domain.Snapshot{
		Drops: []*domain.Drop{
			{
				ID: "d1",
				Products: []*domain.Product{
					{ID: "p1", Name: "Tee", Price: 100, COGS: 40, InitialStock: 10, MonthlyData: map[string]domain.PeriodRecord{
						"2024-03": {Sold: 4},
					}},
				},
			},
		},
	})

	tests := []struct {
		name string
		args []string
	}{
		{name: "Flag da aplicação", args: []string{"--input", path, "summary"}},
		{name: "Flag do comando", args: []string{"summary", "--input", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			require.NoError(t, err)

			var summary map[string]any
			require.NoError(t, jsoniter.Unmarshal([]byte(out), &summary))
			assert.Equal(t, 400.0, summary["total_revenue"])
			assert.Equal(t, 6.0, summary["inventory_units"])
		})
	}
}
