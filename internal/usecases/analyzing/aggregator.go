package analyzing

import (
	"sort"

	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

// runningTotals acompanha os acumulados de todos os períodos
type runningTotals struct {
	revenue         float64
	cogs            float64
	soldUnits       int
	returnedUnits   int
	newCustomers    int
	discountUnits   int
	discountRevenue float64
	adSpend         float64
	expenses        float64
}

// collectPeriods retorna a união das chaves de despesas e de vendas, em ordem cronológica
func collectPeriods(drops []*domain.Drop, expenses map[string]domain.ExpensePeriod) []string {
	seen := make(map[string]struct{})
	for period := range expenses {
		seen[period] = struct{}{}
	}
	for _, drop := range drops {
		for _, product := range drop.Products {
			for period := range product.MonthlyData {
				seen[period] = struct{}{}
			}
		}
	}

	periods := make([]string, 0, len(seen))
	for period := range seen {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	return periods
}

// recordRevenue separa a receita de um registro entre vendas regulares e com desconto
func recordRevenue(record domain.PeriodRecord, price float64) (regular float64, discounted float64) {
	regularUnits := record.NetSold() - record.SoldWithDiscount
	regular = float64(regularUnits) * price
	discounted = float64(record.SoldWithDiscount) * price * (1 - record.DiscountPercent/100)
	return regular, discounted
}

// aggregatePeriods gera um MonthlySummary por período e os totais acumulados
func aggregatePeriods(drops []*domain.Drop, expenses map[string]domain.ExpensePeriod) ([]*domain.MonthlySummary, runningTotals) {
	var totals runningTotals

	periods := collectPeriods(drops, expenses)
	summaries := make([]*domain.MonthlySummary, 0, len(periods))

	for _, period := range periods {
		summary := &domain.MonthlySummary{
			Period: period,
			Label:  domain.PeriodLabel(period),
		}

		for _, drop := range drops {
			for _, product := range drop.Products {
				record, ok := product.MonthlyData[period]
				if !ok {
					continue
				}

				regular, discounted := recordRevenue(record, product.Price)
				summary.Revenue += regular + discounted
				summary.COGS += float64(record.NetSold()) * product.COGS
				summary.Sold += record.Sold
				summary.Returned += record.Returned
				summary.NewCustomers += record.NewCustomers
				summary.DiscountUnits += record.SoldWithDiscount

				if record.SoldWithDiscount > 0 {
					totals.discountRevenue += discounted
				}
			}
		}

		// Período sem despesas cadastradas vale zero
		periodExpenses := expenses[period]
		summary.AdSpend = periodExpenses.AdSpend
		summary.Expenses = periodExpenses.Total()
		summary.Profit = summary.Revenue - summary.COGS - summary.Expenses

		if summary.AdSpend > 0 {
			summary.ROAS = summary.Revenue / summary.AdSpend
		}
		if summary.NewCustomers > 0 {
			summary.CAC = summary.AdSpend / float64(summary.NewCustomers)
		}

		totals.revenue += summary.Revenue
		totals.cogs += summary.COGS
		totals.soldUnits += summary.Sold
		totals.returnedUnits += summary.Returned
		totals.newCustomers += summary.NewCustomers
		totals.discountUnits += summary.DiscountUnits
		totals.adSpend += summary.AdSpend
		totals.expenses += summary.Expenses

		summaries = append(summaries, summary)
	}

	return summaries, totals
}
