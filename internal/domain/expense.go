package domain

// ExpensePeriod são os custos de um período, independentes de qualquer drop
type ExpensePeriod struct {
	AdSpend      float64 `json:"ad_spend"`
	FixedCosts   float64 `json:"fixed_costs"`
	PlatformFees float64 `json:"shopify_fees"`
	OtherCosts   float64 `json:"other_costs"`
}

func (e ExpensePeriod) Total() float64 {
	return e.AdSpend + e.FixedCosts + e.PlatformFees + e.OtherCosts
}
