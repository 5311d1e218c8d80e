package models

// MonthlyRecord holds one month's aggregated electricity consumption and the
// billed cost computed from it
type MonthlyRecord struct {
	Month    int     `json:"month"`    // 1-12
	UsageKWh float64 `json:"usageKwh"` // Metered consumption for the month
	CostWon  int64   `json:"costWon"`  // Billed amount in whole won
}

// TipRecord is one educational tip card. Slice order is display order.
type TipRecord struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Dataset is the precomputed content behind the dashboard: one building, one
// year, twelve monthly records and the tip cards.
type Dataset struct {
	Building string          `json:"building"`
	Year     int             `json:"year"`
	Months   []MonthlyRecord `json:"months"`
	Tips     []TipRecord     `json:"tips"`
}

// AnnualSummary is derived from the monthly records and never stored, so the
// displayed totals cannot drift from the underlying data.
type AnnualSummary struct {
	TotalUsageKWh float64 `json:"totalUsageKwh"`
	TotalCostWon  int64   `json:"totalCostWon"`
	AvgUsageKWh   float64 `json:"avgUsageKwh"`
	AvgCostWon    int64   `json:"avgCostWon"`
}
