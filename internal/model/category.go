// Package model defines the core domain types shared across the engine.
package model

// AuditRisk is a qualitative estimate of how likely an expense category
// is to draw IRS scrutiny.
type AuditRisk string

const (
	// AuditRiskLow marks categories the IRS rarely challenges.
	AuditRiskLow AuditRisk = "low"
	// AuditRiskMedium marks categories with moderate scrutiny (e.g. meals).
	AuditRiskMedium AuditRisk = "medium"
	// AuditRiskHigh marks categories that frequently trigger review.
	AuditRiskHigh AuditRisk = "high"
)

// CategoryDefinition describes one Schedule C expense category and the tax
// metadata attached to it. Definitions are immutable once loaded into a catalog.
type CategoryDefinition struct {
	Key                   string
	IRSCategoryName       string
	ScheduleCLine         string // line number or sub-line code, e.g. "13", "24b"
	ScheduleCDescription  string
	IRSGuidance           string
	AuditRisk             AuditRisk
	Keywords              []string
	DeductionPercentage   int
	IsStartupCost         bool
	RequiresDocumentation bool
}
