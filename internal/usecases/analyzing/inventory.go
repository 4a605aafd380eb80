package analyzing

import (
	"math"

	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

const reorderFraction = 0.5

type inventoryStatus struct {
	units          int
	value          float64
	deadStockValue float64
	alerts         []*domain.RestockAlert
}

// trackInventory agrega o estoque atual e monta os alertas de reposição
func trackInventory(performances []*domain.DropPerformance) inventoryStatus {
	status := inventoryStatus{
		alerts: make([]*domain.RestockAlert, 0),
	}

	for _, dropPerf := range performances {
		for _, perf := range dropPerf.Products {
			status.units += perf.Remaining
			status.value += perf.InventoryValue

			if perf.IsDead {
				status.deadStockValue += perf.InventoryValue
			}

			if perf.NeedsRestock {
				status.alerts = append(status.alerts, &domain.RestockAlert{
					DropName:         dropPerf.DropName,
					ProductID:        perf.ProductID,
					ProductName:      perf.Name,
					Remaining:        perf.Remaining,
					RemainingPercent: perf.RemainingPercent,
					InitialStock:     perf.InitialStock,
					SuggestedReorder: suggestedReorder(perf.InitialStock),
				})
			}
		}
	}

	return status
}

func suggestedReorder(initialStock int) int {
	return int(math.Ceil(float64(initialStock) * reorderFraction))
}
