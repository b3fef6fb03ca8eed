package model

// ComplexityLevel buckets a business's overall tax complexity.
type ComplexityLevel string

const (
	// ComplexityLow covers simple sole-proprietor returns.
	ComplexityLow ComplexityLevel = "low"
	// ComplexityMedium covers businesses with one or two complicating factors.
	ComplexityMedium ComplexityLevel = "medium"
	// ComplexityHigh covers businesses that need advanced modules.
	ComplexityHigh ComplexityLevel = "high"
)

// Tier is the recommended product tier for a given complexity level.
type Tier string

const (
	// TierTrial is the entry tier for low-complexity businesses.
	TierTrial Tier = "trial"
	// TierGuided adds guided preparation for medium complexity.
	TierGuided Tier = "guided"
	// TierPremium covers high-complexity businesses.
	TierPremium Tier = "premium"
)

// ComplexityFlag records one complexity domain detected in a batch of
// expense descriptions or in the business profile.
type ComplexityFlag struct {
	Trigger        string `json:"trigger"`
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
}

// ComplexityResult is the outcome of a complexity assessment.
type ComplexityResult struct {
	ComplexityLevel               ComplexityLevel  `json:"complexity_level"`
	ComplexityScore               int              `json:"complexity_score"`
	Flags                         []ComplexityFlag `json:"flags"`
	RequiresAdvancedQuestionnaire bool             `json:"requires_advanced_questionnaire"`
	RecommendedTier               Tier             `json:"recommended_tier"`
	EstimatedForms                []string         `json:"estimated_forms"`
}
