package analyzing

import (
	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

// Compute recalcula toda a análise a partir de um snapshot dos registros.
// É uma função pura: a mesma entrada sempre produz o mesmo resultado.
func Compute(drops []*domain.Drop, expenses map[string]domain.ExpensePeriod) *domain.AnalysisResult {
	summaries, totals := aggregatePeriods(drops, expenses)
	performances := evaluateDrops(drops)
	inventory := trackInventory(performances)

	result := &domain.AnalysisResult{
		TotalRevenue:          totals.revenue,
		TotalCOGS:             totals.cogs,
		TotalSoldUnits:        totals.soldUnits,
		TotalReturnedUnits:    totals.returnedUnits,
		TotalNewCustomers:     totals.newCustomers,
		TotalDiscountUnits:    totals.discountUnits,
		TotalDiscountRevenue:  totals.discountRevenue,
		TotalAdSpend:          totals.adSpend,
		TotalExpenses:         totals.expenses,
		CurrentInventoryUnits: inventory.units,
		CurrentInventoryValue: inventory.value,
		DeadStockValue:        inventory.deadStockValue,
		MonthlyData:           summaries,
		DropPerformance:       performances,
		Projections:           project(summaries),
		RestockAlerts:         inventory.alerts,
	}

	result.GrossProfit = result.TotalRevenue - result.TotalCOGS
	result.NetProfit = result.GrossProfit - result.TotalExpenses
	result.GrossMargin = percentOf(result.GrossProfit, result.TotalRevenue)
	result.NetMargin = percentOf(result.NetProfit, result.TotalRevenue)
	result.ReturnRate = percentOf(float64(result.TotalReturnedUnits), float64(result.TotalSoldUnits))
	result.DiscountSalesPercent = percentOf(float64(result.TotalDiscountUnits), float64(result.TotalSoldUnits))

	if result.TotalAdSpend > 0 {
		result.OverallROAS = result.TotalRevenue / result.TotalAdSpend
	}
	if result.TotalNewCustomers > 0 {
		result.OverallCAC = result.TotalAdSpend / float64(result.TotalNewCustomers)
	}
	if result.TotalSoldUnits > 0 {
		result.AvgOrderValue = result.TotalRevenue / float64(result.TotalSoldUnits)
	}

	return result
}
