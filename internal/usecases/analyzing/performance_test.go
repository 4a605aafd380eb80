package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

func TestIsDeadStock(t *testing.T) {
	tests := []struct {
		name      string
		months    float64
		remaining int
		expected  bool
	}{
		{name: "exatamente no horizonte", months: 6, remaining: 50, expected: false},
		{name: "acima do horizonte", months: 6.01, remaining: 11, expected: true},
		{name: "poucas unidades", months: 20, remaining: 10, expected: false},
		{name: "sem vendas", months: noSalesMonthsOfStock, remaining: 100, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isDeadStock(tt.months, tt.remaining))
		})
	}
}

func TestNeedsRestock(t *testing.T) {
	assert.False(t, needsRestock(0))
	assert.True(t, needsRestock(0.5))
	assert.True(t, needsRestock(25))
	assert.False(t, needsRestock(25.01))
	assert.False(t, needsRestock(-5))
}

func TestEvaluateProduct_NoSales(t *testing.T) {
	perf := evaluateProduct(&domain.Product{
		ID:           "p1",
		Price:        100,
		COGS:         40,
		InitialStock: 30,
	})

	assert.Equal(t, 1, perf.MonthsTracked)
	assert.Equal(t, 30, perf.Remaining)
	assert.InDelta(t, 100.0, perf.RemainingPercent, delta)
	assert.InDelta(t, float64(noSalesMonthsOfStock), perf.MonthsOfStockRemaining, delta)
	assert.True(t, perf.IsDead)
	assert.InDelta(t, 1200.0, perf.InventoryValue, delta)
	assert.Zero(t, perf.ReturnRate)
}

func TestEvaluateProduct_ZeroInitialStock(t *testing.T) {
	perf := evaluateProduct(&domain.Product{
		ID:          "p1",
		Price:       100,
		MonthlyData: map[string]domain.PeriodRecord{"2024-01": {Sold: 3}},
	})

	assert.Equal(t, -3, perf.Remaining)
	assert.Zero(t, perf.RemainingPercent)
	assert.Zero(t, perf.SellThrough)
	assert.False(t, perf.NeedsRestock)
}

func TestTrailingGrowthRate(t *testing.T) {
	summaries := func(revenues ...float64) []*domain.MonthlySummary {
		out := make([]*domain.MonthlySummary, 0, len(revenues))
		for _, revenue := range revenues {
			out = append(out, &domain.MonthlySummary{Revenue: revenue})
		}
		return out
	}

	assert.InDelta(t, 0.25, trailingGrowthRate(summaries(100, 125, 150)), delta)
	assert.Zero(t, trailingGrowthRate(summaries(0, 100, 200)))
	assert.InDelta(t, defaultGrowthRate, trailingGrowthRate(summaries(100)), delta)
}

func TestProject_UsesLastThreePeriods(t *testing.T) {
	summaries := []*domain.MonthlySummary{
		{Revenue: 1000000, Expenses: 10},
		{Revenue: 100, Expenses: 10},
		{Revenue: 100, Expenses: 10},
		{Revenue: 100, Expenses: 10},
	}

	projections := project(summaries)

	assert.Len(t, projections, projectionHorizon)
	assert.InDelta(t, 100.0, projections[0].Revenue, delta)
	assert.InDelta(t, 10.3, projections[0].Expenses, delta)
	assert.InDelta(t, 100.0-10.3-35.0, projections[0].Profit, delta)
}
