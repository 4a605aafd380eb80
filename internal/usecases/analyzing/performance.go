package analyzing

import (
	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

const (
	// deadStockHorizonMonths é o horizonte acima do qual o estoque é considerado parado
	deadStockHorizonMonths = 6
	// deadStockMinUnits ignora sobras pequenas na regra de estoque parado
	deadStockMinUnits = 10
	// restockThresholdPercent dispara o alerta de reposição
	restockThresholdPercent = 25
	// noSalesMonthsOfStock representa "infinito" quando não há vendas
	noSalesMonthsOfStock = 999
)

func isDeadStock(monthsOfStockRemaining float64, remaining int) bool {
	return monthsOfStockRemaining > deadStockHorizonMonths && remaining > deadStockMinUnits
}

// needsRestock é falso para produto esgotado (0%)
func needsRestock(remainingPercent float64) bool {
	return remainingPercent > 0 && remainingPercent <= restockThresholdPercent
}

func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// evaluateProduct acumula todos os períodos de um produto
func evaluateProduct(product *domain.Product) *domain.ProductPerformance {
	perf := &domain.ProductPerformance{
		ProductID:    product.ID,
		Name:         product.Name,
		SKU:          product.SKU,
		Price:        product.Price,
		UnitCOGS:     product.COGS,
		InitialStock: product.InitialStock,
	}

	for _, record := range product.MonthlyData {
		perf.TotalSold += record.Sold
		perf.TotalReturned += record.Returned
		perf.DiscountUnits += record.SoldWithDiscount
	}

	perf.NetSold = perf.TotalSold - perf.TotalReturned
	perf.Revenue = float64(perf.NetSold) * product.Price
	perf.COGS = float64(perf.NetSold) * product.COGS
	perf.Profit = perf.Revenue - perf.COGS
	perf.Remaining = product.InitialStock - perf.NetSold
	perf.InventoryValue = float64(perf.Remaining) * product.COGS
	perf.RemainingPercent = percentOf(float64(perf.Remaining), float64(product.InitialStock))
	perf.SellThrough = percentOf(float64(perf.NetSold), float64(product.InitialStock))
	perf.ReturnRate = percentOf(float64(perf.TotalReturned), float64(perf.TotalSold))

	perf.MonthsTracked = max(len(product.MonthlyData), 1)
	avgMonthlySales := float64(perf.NetSold) / float64(perf.MonthsTracked)
	perf.MonthsOfStockRemaining = noSalesMonthsOfStock
	if avgMonthlySales > 0 {
		perf.MonthsOfStockRemaining = float64(perf.Remaining) / avgMonthlySales
	}

	perf.IsDead = isDeadStock(perf.MonthsOfStockRemaining, perf.Remaining)
	perf.NeedsRestock = needsRestock(perf.RemainingPercent)

	return perf
}

// evaluateDrops calcula a performance de cada drop preservando a ordem de entrada
func evaluateDrops(drops []*domain.Drop) []*domain.DropPerformance {
	performances := make([]*domain.DropPerformance, 0, len(drops))

	for _, drop := range drops {
		dropPerf := &domain.DropPerformance{
			DropID:   drop.ID,
			DropName: drop.Name,
			Products: make([]*domain.ProductPerformance, 0, len(drop.Products)),
		}

		for _, product := range drop.Products {
			perf := evaluateProduct(product)
			dropPerf.Revenue += perf.Revenue
			dropPerf.COGS += perf.COGS
			dropPerf.SoldUnits += perf.NetSold
			dropPerf.Products = append(dropPerf.Products, perf)
		}

		dropPerf.Profit = dropPerf.Revenue - dropPerf.COGS
		performances = append(performances, dropPerf)
	}

	return performances
}
