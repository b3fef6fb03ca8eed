package complexity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fylr/fylr-engine/internal/model"
)

func TestAssessEmployeesWithHighRevenue(t *testing.T) {
	assessor := NewAssessor(nil)

	result := assessor.Assess(
		[]string{"Hired 3 employees this year"},
		model.BusinessProfile{HasEmployees: true, AnnualRevenue: 350000},
	)

	assert.Equal(t, model.ComplexityHigh, result.ComplexityLevel)
	assert.Equal(t, 30, result.ComplexityScore)
	assert.True(t, result.RequiresAdvancedQuestionnaire)
	assert.Equal(t, model.TierPremium, result.RecommendedTier)

	categories := make([]string, 0, len(result.Flags))
	for _, f := range result.Flags {
		categories = append(categories, f.Category)
	}
	assert.Contains(t, categories, "Payroll & Employment")
	assert.Contains(t, categories, "High Revenue Business")
}

func TestAssessEmptyInput(t *testing.T) {
	assessor := NewAssessor(nil)

	result := assessor.Assess(nil, model.BusinessProfile{})

	assert.Equal(t, model.ComplexityLow, result.ComplexityLevel)
	assert.Equal(t, 0, result.ComplexityScore)
	assert.Empty(t, result.Flags)
	assert.False(t, result.RequiresAdvancedQuestionnaire)
	assert.Equal(t, model.TierTrial, result.RecommendedTier)
	assert.Equal(t, []string{"Schedule C"}, result.EstimatedForms)
}

func TestAssessDeduplicatesTriggers(t *testing.T) {
	assessor := NewAssessor(nil)

	result := assessor.Assess(
		[]string{
			"Payroll run for March",
			"Payroll run for April",
			"Payroll run for May",
		},
		model.BusinessProfile{},
	)

	// One keyword trigger fires once no matter how many descriptions hit it.
	require.Len(t, result.Flags, 1)
	assert.Equal(t, "Payroll & Employment", result.Flags[0].Category)
	assert.Equal(t, 10, result.ComplexityScore)
	assert.Equal(t, model.ComplexityLow, result.ComplexityLevel)
}

func TestAssessFlagOrderIsTriggerDeclarationOrder(t *testing.T) {
	assessor := NewAssessor(nil)

	// Input mentions crypto before payroll; flags still come out in trigger
	// declaration order.
	result := assessor.Assess(
		[]string{"bought bitcoin", "ran payroll"},
		model.BusinessProfile{},
	)

	require.Len(t, result.Flags, 2)
	assert.Equal(t, "Payroll & Employment", result.Flags[0].Category)
	assert.Equal(t, "Digital Assets", result.Flags[1].Category)

	permuted := assessor.Assess(
		[]string{"ran payroll", "bought bitcoin"},
		model.BusinessProfile{},
	)
	assert.Equal(t, result.Flags, permuted.Flags)
}

func TestAssessMediumComplexity(t *testing.T) {
	assessor := NewAssessor(nil)

	result := assessor.Assess(
		[]string{"sold inventory overseas"},
		model.BusinessProfile{},
	)

	assert.Equal(t, 20, result.ComplexityScore)
	assert.Equal(t, model.ComplexityMedium, result.ComplexityLevel)
	assert.Equal(t, model.TierGuided, result.RecommendedTier)
	assert.True(t, result.RequiresAdvancedQuestionnaire)
}

func TestAssessEstimatedForms(t *testing.T) {
	assessor := NewAssessor(nil)

	result := assessor.Assess(
		[]string{"hired an employee", "sold some cryptocurrency"},
		model.BusinessProfile{HasEmployees: true},
	)

	// Schedule C always leads; trigger forms follow in trigger order with
	// duplicates dropped.
	assert.Equal(t,
		[]string{"Schedule C", "Form 941", "Form 940", "W-2", "W-3", "Form 8949"},
		result.EstimatedForms,
	)
}

func TestAssessRevenueThreshold(t *testing.T) {
	assessor := NewAssessor(nil)

	below := assessor.Assess(nil, model.BusinessProfile{AnnualRevenue: 250000})
	assert.Empty(t, below.Flags)

	above := assessor.Assess(nil, model.BusinessProfile{AnnualRevenue: 250001})
	require.Len(t, above.Flags, 1)
	assert.Equal(t, "high_revenue", above.Flags[0].Trigger)
	assert.Equal(t, 5, above.ComplexityScore)
}
