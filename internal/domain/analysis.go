package domain

// MonthlySummary consolida todos os produtos e despesas de um período
type MonthlySummary struct {
	Period        string  `json:"period"` // Formato yyyy-mm
	Label         string  `json:"month"`
	Revenue       float64 `json:"revenue"`
	COGS          float64 `json:"cogs"`
	Expenses      float64 `json:"expenses"`
	Profit        float64 `json:"profit"`
	Sold          int     `json:"sold"`
	Returned      int     `json:"returned"`
	AdSpend       float64 `json:"ad_spend"`
	ROAS          float64 `json:"roas"`
	CAC           float64 `json:"cac"`
	NewCustomers  int     `json:"new_customers"`
	DiscountUnits int     `json:"discount_sales"`
}

// ProductPerformance acumula todo o histórico de um produto
type ProductPerformance struct {
	ProductID              string  `json:"product_id"`
	Name                   string  `json:"name"`
	SKU                    string  `json:"sku"`
	Price                  float64 `json:"price"`
	UnitCOGS               float64 `json:"unit_cogs"`
	InitialStock           int     `json:"initial_stock"`
	TotalSold              int     `json:"total_sold"`
	TotalReturned          int     `json:"total_returned"`
	NetSold                int     `json:"net_sold"`
	DiscountUnits          int     `json:"discount_sales"`
	Remaining              int     `json:"remaining"`
	RemainingPercent       float64 `json:"remaining_percent"`
	Revenue                float64 `json:"revenue"`
	COGS                   float64 `json:"cogs"`
	Profit                 float64 `json:"profit"`
	InventoryValue         float64 `json:"inventory_value"`
	SellThrough            float64 `json:"sell_through"`
	ReturnRate             float64 `json:"return_rate"`
	MonthsTracked          int     `json:"months_tracked"`
	MonthsOfStockRemaining float64 `json:"months_of_stock_remaining"`
	IsDead                 bool    `json:"is_dead"`
	NeedsRestock           bool    `json:"needs_restock"`
}

type DropPerformance struct {
	DropID    string                `json:"drop_id"`
	DropName  string                `json:"drop_name"`
	Revenue   float64               `json:"revenue"`
	COGS      float64               `json:"cogs"`
	Profit    float64               `json:"profit"`
	SoldUnits int                   `json:"sold_units"`
	Products  []*ProductPerformance `json:"products"`
}

type RestockAlert struct {
	DropName         string  `json:"drop_name"`
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	Remaining        int     `json:"remaining"`
	RemainingPercent float64 `json:"remaining_percent"`
	InitialStock     int     `json:"initial_stock"`
	SuggestedReorder int     `json:"suggested_reorder"`
}

// Projection é um ponto da projeção "se continuar assim" (+1M..+6M)
type Projection struct {
	Label    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// AnalysisResult é o resultado completo de um recálculo
type AnalysisResult struct {
	SnapshotVersion uint64 `json:"snapshot_version"`

	TotalRevenue         float64 `json:"total_revenue"`
	TotalCOGS            float64 `json:"total_cogs"`
	GrossProfit          float64 `json:"gross_profit"`
	GrossMargin          float64 `json:"gross_margin"`
	NetProfit            float64 `json:"net_profit"`
	NetMargin            float64 `json:"net_margin"`
	TotalSoldUnits       int     `json:"total_sold_units"`
	TotalReturnedUnits   int     `json:"total_returned_units"`
	ReturnRate           float64 `json:"return_rate"`
	TotalNewCustomers    int     `json:"total_new_customers"`
	TotalDiscountUnits   int     `json:"total_discount_sales"`
	TotalDiscountRevenue float64 `json:"total_discount_revenue"`
	DiscountSalesPercent float64 `json:"discount_sales_percent"`
	TotalAdSpend         float64 `json:"total_ad_spend"`
	TotalExpenses        float64 `json:"total_expenses"`
	OverallROAS          float64 `json:"overall_roas"`
	OverallCAC           float64 `json:"overall_cac"`
	AvgOrderValue        float64 `json:"avg_order_value"`

	CurrentInventoryUnits int     `json:"current_inventory_units"`
	CurrentInventoryValue float64 `json:"current_inventory_value"`
	DeadStockValue        float64 `json:"dead_stock_value"`

	MonthlyData     []*MonthlySummary  `json:"monthly_data"`
	DropPerformance []*DropPerformance `json:"drop_performance"`
	Projections     []*Projection      `json:"projections"`
	RestockAlerts   []*RestockAlert    `json:"restock_alerts"`
}
