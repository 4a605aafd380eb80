package domain

// SampleSnapshot retorna os dados de exemplo usados para demonstração e pelo relatório de linha de comando
func SampleSnapshot() *Snapshot {
	return &Snapshot{
		Drops: []*Drop{
			{
				ID:         "launch-collection",
				Name:       "Launch Collection",
				LaunchDate: "2024-01-01",
				Status:     DropStatusActive,
				Products: []*Product{
					{
						ID:           "cah-blk-001",
						Name:         "Cool Ape Hoodie - Black",
						SKU:          "CAH-BLK-001",
						Price:        2500,
						COGS:         800,
						InitialStock: 100,
						MonthlyData: map[string]PeriodRecord{
							"2024-11": {Sold: 15, Returned: 2, SoldWithDiscount: 3, DiscountPercent: 20, NewCustomers: 12},
							"2024-12": {Sold: 12, Returned: 1, SoldWithDiscount: 2, DiscountPercent: 15, NewCustomers: 10},
						},
					},
				},
			},
		},
		Expenses: map[string]ExpensePeriod{
			"2024-11": {AdSpend: 30000, FixedCosts: 15000, PlatformFees: 2500, OtherCosts: 5000},
			"2024-12": {AdSpend: 35000, FixedCosts: 15000, PlatformFees: 2500, OtherCosts: 3000},
		},
	}
}
