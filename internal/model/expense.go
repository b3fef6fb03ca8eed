package model

// Expense is a fully classified business expense produced by the parser.
// The record stores the full amount; DeductionPercentage is metadata and is
// never pre-multiplied into Amount, so callers that need the deductible
// dollar figure must ask for it explicitly.
type Expense struct {
	Description           string    `json:"description"`
	Amount                *float64  `json:"amount"`
	CategoryKey           string    `json:"category_key"`
	IRSCategory           string    `json:"irs_category"`
	ScheduleCLine         string    `json:"schedule_c_line"`
	ScheduleCDescription  string    `json:"schedule_c_description"`
	IRSGuidance           string    `json:"irs_guidance"`
	AuditRisk             AuditRisk `json:"audit_risk"`
	DeductionPercentage   int       `json:"deduction_percentage"`
	IsStartupCost         bool      `json:"is_startup_cost"`
	RequiresDocumentation bool      `json:"requires_documentation"`
	Confidence            float64   `json:"confidence"`
}

// DeductibleAmount returns the deduction-percentage-adjusted dollar figure,
// or 0 when the amount is unknown.
func (e Expense) DeductibleAmount() float64 {
	if e.Amount == nil {
		return 0
	}
	return *e.Amount * float64(e.DeductionPercentage) / 100
}
