package analyzing

import (
	"math"
	"slices"

	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

// targetProducts filtra os produtos do cenário; lista vazia seleciona o drop inteiro
func targetProducts(drop *domain.Drop, productIDs []string) []*domain.Product {
	if len(productIDs) == 0 {
		return drop.Products
	}

	targets := make([]*domain.Product, 0, len(productIDs))
	for _, product := range drop.Products {
		if slices.Contains(productIDs, product.ID) {
			targets = append(targets, product)
		}
	}
	return targets
}

// breakEvenDiscount usa apenas a margem do primeiro produto selecionado
func breakEvenDiscount(targets []*domain.Product) float64 {
	if len(targets) == 0 || targets[0].Price == 0 {
		return 0
	}
	return (1 - targets[0].COGS/targets[0].Price) * 100
}

// ComputeDiscountImpact simula um desconto sobre o estoque restante de um drop.
// Retorna nil quando não há drop selecionado, o drop não existe ou o desconto não foi informado.
func ComputeDiscountImpact(scenario *domain.DiscountScenario, drops []*domain.Drop) *domain.DiscountImpact {
	if scenario == nil || scenario.DropID == "" || scenario.DiscountPercent == 0 {
		return nil
	}

	var drop *domain.Drop
	for _, candidate := range drops {
		if candidate.ID == scenario.DropID {
			drop = candidate
			break
		}
	}
	if drop == nil {
		return nil
	}

	targets := targetProducts(drop, scenario.ProductIDs)

	impact := &domain.DiscountImpact{}
	var unitsToSell float64

	for _, product := range targets {
		remaining := float64(evaluateProduct(product).Remaining)
		impact.CurrentInventoryValue += remaining * product.COGS

		// O aumento de vendas nunca ultrapassa o estoque restante
		estimatedUnits := math.Min(remaining, remaining*(scenario.ExpectedSalesIncrease/100))
		discountedPrice := product.Price * (1 - scenario.DiscountPercent/100)
		revenue := estimatedUnits * discountedPrice

		impact.ProjectedRevenue += revenue
		impact.ProjectedProfit += revenue - estimatedUnits*product.COGS
		unitsToSell += estimatedUnits
	}

	impact.UnitsToSell = int(math.Round(unitsToSell))
	impact.CashFreed = impact.CurrentInventoryValue
	impact.BreakEvenDiscount = breakEvenDiscount(targets)
	impact.IsProfitable = impact.ProjectedProfit > 0

	return impact
}
