package analyzing

import (
	"fmt"
	"math"

	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

const (
	projectionHorizon      = 6
	projectionWindow       = 3
	defaultGrowthRate      = 0.05
	expenseGrowthRate      = 0.03
	assumedCOGSRatio       = 0.35
	minPeriodsToProjection = 2
)

// trailingGrowthRate é o crescimento médio por período entre o primeiro e o último ponto da janela
func trailingGrowthRate(window []*domain.MonthlySummary) float64 {
	if len(window) < 2 {
		return defaultGrowthRate
	}

	first := window[0].Revenue
	last := window[len(window)-1].Revenue
	if first == 0 {
		return 0
	}

	return (last - first) / first / float64(len(window)-1)
}

// project extrapola a média dos últimos períodos com crescimento composto
func project(summaries []*domain.MonthlySummary) []*domain.Projection {
	projections := make([]*domain.Projection, 0, projectionHorizon)
	if len(summaries) < minPeriodsToProjection {
		return projections
	}

	window := summaries[max(len(summaries)-projectionWindow, 0):]

	var avgRevenue, avgExpenses float64
	for _, summary := range window {
		avgRevenue += summary.Revenue
		avgExpenses += summary.Expenses
	}
	avgRevenue /= float64(len(window))
	avgExpenses /= float64(len(window))

	growthRate := trailingGrowthRate(window)

	for i := 1; i <= projectionHorizon; i++ {
		revenue := avgRevenue * math.Pow(1+growthRate, float64(i))
		expenses := avgExpenses * math.Pow(1+expenseGrowthRate, float64(i))

		projections = append(projections, &domain.Projection{
			Label:    fmt.Sprintf("+%dM", i),
			Revenue:  revenue,
			Expenses: expenses,
			Profit:   revenue - expenses - revenue*assumedCOGSRatio,
		})
	}

	return projections
}
