package domain

// DiscountScenario descreve um desconto hipotético para um drop.
// ProductIDs vazio significa todos os produtos do drop.
type DiscountScenario struct {
	DropID                string   `json:"drop_id"`
	ProductIDs            []string `json:"product_ids"`
	DiscountPercent       float64  `json:"discount_percent"`
	ExpectedSalesIncrease float64  `json:"expected_sales_increase"`
}

type DiscountImpact struct {
	CurrentInventoryValue float64 `json:"current_inventory_value"`
	ProjectedRevenue      float64 `json:"projected_revenue"`
	ProjectedProfit       float64 `json:"projected_profit"`
	UnitsToSell           int     `json:"units_to_sell"`
	CashFreed             float64 `json:"cash_freed"`
	BreakEvenDiscount     float64 `json:"break_even_discount"`
	IsProfitable          bool    `json:"is_profitable"`
}
