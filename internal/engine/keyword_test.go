package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fylr/fylr-engine/internal/catalog"
	"github.com/fylr/fylr-engine/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	defs := []model.CategoryDefinition{
		{
			Key:                 "gear",
			IRSCategoryName:     "Equipment",
			ScheduleCLine:       "13",
			DeductionPercentage: 100,
			AuditRisk:           model.AuditRiskLow,
			Keywords:            []string{"laptop", "camera", "tripod"},
		},
		{
			Key:                 "travel",
			IRSCategoryName:     "Business Travel",
			ScheduleCLine:       "24a",
			DeductionPercentage: 100,
			AuditRisk:           model.AuditRiskLow,
			Keywords:            []string{"flight", "hotel"},
		},
		{
			Key:                 "misc",
			IRSCategoryName:     "Other Business Expenses",
			ScheduleCLine:       "27",
			DeductionPercentage: 100,
			AuditRisk:           model.AuditRiskLow,
			Keywords:            []string{"miscellaneous"},
		},
	}

	cat, err := catalog.New(defs, "misc", []string{"formation"})
	require.NoError(t, err)
	return cat
}

func TestKeywordClassifier(t *testing.T) {
	classifier := NewKeywordClassifier(testCatalog(t))
	ctx := context.Background()

	tests := []struct {
		name           string
		description    string
		wantKey        string
		wantConfidence float64
	}{
		{
			name:           "single keyword hit",
			description:    "bought a laptop for work",
			wantKey:        "gear",
			wantConfidence: 0.6,
		},
		{
			name:           "extra distinct hits raise confidence",
			description:    "laptop, camera and tripod for the studio",
			wantKey:        "gear",
			wantConfidence: 0.8,
		},
		{
			name:           "zero hits fall back",
			description:    "some unclassifiable spending",
			wantKey:        "misc",
			wantConfidence: 0.3,
		},
		{
			name:           "empty description falls back",
			description:    "",
			wantKey:        "misc",
			wantConfidence: 0.3,
		},
		{
			name:           "tie broken by declaration order",
			description:    "laptop and flight",
			wantKey:        "gear",
			wantConfidence: 0.6,
		},
		{
			name:           "higher hit count beats earlier declaration",
			description:    "laptop plus flight and hotel",
			wantKey:        "travel",
			wantConfidence: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifier.Classify(ctx, tt.description, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, got.CategoryKey)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 0.001)
		})
	}
}

func TestKeywordClassifierDeterministic(t *testing.T) {
	classifier := NewKeywordClassifier(catalog.Default())
	ctx := context.Background()

	first, err := classifier.Classify(ctx, "paid for hotel and airfare", nil)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, classifyErr := classifier.Classify(ctx, "paid for hotel and airfare", nil)
		require.NoError(t, classifyErr)
		assert.Equal(t, first, again)
	}
}

func TestKeywordClassifierConfidenceCap(t *testing.T) {
	defs := []model.CategoryDefinition{
		{
			Key:                 "gear",
			IRSCategoryName:     "Equipment",
			ScheduleCLine:       "13",
			DeductionPercentage: 100,
			AuditRisk:           model.AuditRiskLow,
			Keywords:            []string{"aa", "bb", "cc", "dd", "ee", "ff"},
		},
		{
			Key:                 "misc",
			IRSCategoryName:     "Other",
			ScheduleCLine:       "27",
			DeductionPercentage: 100,
			AuditRisk:           model.AuditRiskLow,
			Keywords:            []string{"zz"},
		},
	}
	cat, err := catalog.New(defs, "misc", nil)
	require.NoError(t, err)

	classifier := NewKeywordClassifier(cat)
	got, err := classifier.Classify(context.Background(), "aa bb cc dd ee ff", nil)
	require.NoError(t, err)
	assert.Equal(t, "gear", got.CategoryKey)
	assert.InDelta(t, 0.95, got.Confidence, 0.001)
}
