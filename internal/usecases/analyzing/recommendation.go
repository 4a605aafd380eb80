package analyzing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

const (
	currency = "EGP"

	maxHealthyCAC           = 150.0
	maxHealthyReturnRate    = 15.0
	minHealthyNetMargin     = 10.0
	minHealthyROAS          = 2.5
	maxHealthyDiscountShare = 40.0

	adSavingsFraction   = 0.2
	returnLossPerUnit   = 800.0
	marginBoostFraction = 0.15
)

// formatFixed arredonda com meio para longe do zero (12.5 -> 13) antes de exibir
func formatFixed(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places)
}

// formatAmount arredonda valores monetários para exibição sem casas decimais
func formatAmount(value float64) string {
	return formatFixed(value, 0)
}

func restockRecommendation(alert *domain.RestockAlert) *domain.Recommendation {
	return &domain.Recommendation{
		Priority:    domain.PriorityCritical,
		Title:       fmt.Sprintf("RESTOCK: %s", alert.ProductName),
		Description: fmt.Sprintf("Only %d units left (%s%% of stock)", alert.Remaining, formatFixed(alert.RemainingPercent, 0)),
		Action:      fmt.Sprintf("Order %d units immediately", alert.SuggestedReorder),
		Impact:      "Avoid stockout & lost sales",
	}
}

func deadStockRecommendation(perf *domain.ProductPerformance) *domain.Recommendation {
	return &domain.Recommendation{
		Priority:    domain.PriorityHigh,
		Title:       fmt.Sprintf("Dead Stock: %s", perf.Name),
		Description: fmt.Sprintf("%d units for %s+ months", perf.Remaining, formatFixed(perf.MonthsOfStockRemaining, 1)),
		Action:      "Discount 40-50% to liquidate",
		Impact:      fmt.Sprintf("Free %s %s cash", formatAmount(perf.InventoryValue), currency),
	}
}

// ComputeRecommendations avalia as regras de negócio sobre o resultado da análise.
// A ordem final é por prioridade, mantendo a ordem de avaliação dentro da mesma prioridade.
func ComputeRecommendations(result *domain.AnalysisResult) []*domain.Recommendation {
	recs := make([]*domain.Recommendation, 0)
	if result == nil {
		return recs
	}

	for _, alert := range result.RestockAlerts {
		recs = append(recs, restockRecommendation(alert))
	}

	if result.OverallCAC > maxHealthyCAC {
		recs = append(recs, &domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Title:       fmt.Sprintf("High Customer Acquisition Cost: %s %s", formatAmount(result.OverallCAC), currency),
			Description: "You're spending too much to acquire each customer",
			Action:      "Optimize ad targeting, test new creatives, improve organic reach",
			Impact:      fmt.Sprintf("Save %s %s monthly", formatAmount(result.TotalAdSpend*adSavingsFraction), currency),
		})
	}

	if result.ReturnRate > maxHealthyReturnRate {
		recs = append(recs, &domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Title:       fmt.Sprintf("High Return Rate: %s%%", formatFixed(result.ReturnRate, 1)),
			Description: fmt.Sprintf("%d units returned", result.TotalReturnedUnits),
			Action:      "Review sizing, quality, and product descriptions",
			Impact:      fmt.Sprintf("Save %s %s in losses", formatAmount(float64(result.TotalReturnedUnits)*returnLossPerUnit), currency),
		})
	}

	for _, dropPerf := range result.DropPerformance {
		for _, perf := range dropPerf.Products {
			if perf.IsDead && perf.Remaining > deadStockMinUnits {
				recs = append(recs, deadStockRecommendation(perf))
			}
		}
	}

	if result.NetMargin < minHealthyNetMargin && result.TotalRevenue > 0 {
		recs = append(recs, &domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Title:       fmt.Sprintf("Low Net Profit Margin: %s%%", formatFixed(result.NetMargin, 1)),
			Description: "Target: 15-25% for healthy business",
			Action:      "Increase prices 10-15%, negotiate better COGS, reduce expenses",
			Impact:      fmt.Sprintf("Boost profit by %s %s", formatAmount(result.TotalRevenue*marginBoostFraction), currency),
		})
	}

	if result.OverallROAS < minHealthyROAS && result.TotalAdSpend > 0 {
		recs = append(recs, &domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Title:       fmt.Sprintf("Low Ad Performance: %sx ROAS", formatFixed(result.OverallROAS, 2)),
			Description: "Target: 2.5x+ for sustainable growth",
			Action:      "Test new ad formats, refine audience, improve landing page",
			Impact:      "Better ad efficiency & lower CAC",
		})
	}

	if result.DiscountSalesPercent > maxHealthyDiscountShare {
		recs = append(recs, &domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Title:       fmt.Sprintf("Heavy Discounting: %s%% of sales", formatFixed(result.DiscountSalesPercent, 0)),
			Description: "Too many sales at discount hurts margins",
			Action:      "Reduce discount frequency, increase perceived value",
			Impact:      "Improve margins by 10-15%",
		})
	}

	sortByPriority(recs)

	return recs
}

func sortByPriority(recs []*domain.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() < recs[j].Priority.Rank()
	})
}
