package model

// StartupExpense is the minimal expense shape the startup-cost optimizer
// consumes. Negative amounts are treated as zero contribution.
type StartupExpense struct {
	Amount        float64 `json:"amount"`
	IsStartupCost bool    `json:"is_startup_cost"`
}

// StartupCostResult holds the IRC section 195 deduction breakdown for a set
// of start-up expenses.
type StartupCostResult struct {
	TotalStartupCosts       float64  `json:"total_startup_costs"`
	ImmediateDeduction      float64  `json:"immediate_deduction"`
	AmortizableAmount       float64  `json:"amortizable_amount"`
	MonthlyAmortization     float64  `json:"monthly_amortization"`
	FirstYearTotalDeduction float64  `json:"first_year_total_deduction"`
	Strategy                string   `json:"strategy,omitempty"`
	IRSForm                 string   `json:"irs_form"`
	Recommendations         []string `json:"recommendations"`
}
