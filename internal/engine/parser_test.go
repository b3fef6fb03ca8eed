package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fylr/fylr-engine/internal/catalog"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	cat := catalog.Default()
	return NewParser(cat, NewKeywordClassifier(cat), nil)
}

func TestParseLaptopPurchase(t *testing.T) {
	parser := newTestParser(t)

	expense := parser.Parse(context.Background(), "I bought a laptop for $3,000", nil)

	assert.Equal(t, "depreciation", expense.CategoryKey)
	assert.Equal(t, "13", expense.ScheduleCLine)
	require.NotNil(t, expense.Amount)
	assert.InDelta(t, 3000.0, *expense.Amount, 0.001)
	assert.GreaterOrEqual(t, expense.Confidence, 0.6)
	assert.Equal(t, 100, expense.DeductionPercentage)
	assert.False(t, expense.IsStartupCost)
}

func TestParseEmptyDescription(t *testing.T) {
	parser := newTestParser(t)

	expense := parser.Parse(context.Background(), "", nil)

	assert.Nil(t, expense.Amount)
	assert.Equal(t, "other", expense.CategoryKey)
	assert.InDelta(t, 0.3, expense.Confidence, 0.001)
}

func TestParseExplicitAmountWins(t *testing.T) {
	parser := newTestParser(t)

	amount := 250.0
	expense := parser.Parse(context.Background(), "conference ticket $400", &amount)

	require.NotNil(t, expense.Amount)
	assert.InDelta(t, 250.0, *expense.Amount, 0.001)
}

func TestParseStartupCostDetection(t *testing.T) {
	parser := newTestParser(t)

	expense := parser.Parse(context.Background(), "LLC filing and formation fees $800", nil)

	assert.True(t, expense.IsStartupCost)
}

func TestParseMealsMetadata(t *testing.T) {
	parser := newTestParser(t)

	expense := parser.Parse(context.Background(), "client dinner at a restaurant", nil)

	assert.Equal(t, "meals", expense.CategoryKey)
	assert.Equal(t, "24b", expense.ScheduleCLine)
	assert.Equal(t, 50, expense.DeductionPercentage)
	// Deduction percentage is metadata: the stored amount stays whole.
	amount := 120.0
	expense = parser.Parse(context.Background(), "client dinner at a restaurant", &amount)
	require.NotNil(t, expense.Amount)
	assert.InDelta(t, 120.0, *expense.Amount, 0.001)
	assert.InDelta(t, 60.0, expense.DeductibleAmount(), 0.001)
}

func TestParseIdempotent(t *testing.T) {
	parser := newTestParser(t)
	ctx := context.Background()

	first := parser.Parse(ctx, "bought a camera for the studio $1,200", nil)
	second := parser.Parse(ctx, first.Description, nil)

	assert.Equal(t, first.CategoryKey, second.CategoryKey)
	assert.Equal(t, first.Confidence, second.Confidence)
}

type erroringClassifier struct{}

func (erroringClassifier) Classify(context.Context, string, *float64) (Classification, error) {
	return Classification{}, errors.New("broken classifier")
}

func TestParseFailsClosedOnClassifierError(t *testing.T) {
	cat := catalog.Default()
	parser := NewParser(cat, erroringClassifier{}, nil)

	expense := parser.Parse(context.Background(), "anything at all", nil)

	assert.Equal(t, "other", expense.CategoryKey)
	assert.InDelta(t, 0.3, expense.Confidence, 0.001)
}

func TestParseBatchKeepsOrder(t *testing.T) {
	parser := newTestParser(t)

	descriptions := []string{
		"bought a laptop $2,500",
		"client lunch at a restaurant",
		"monthly office rent $1,200",
		"",
	}

	results := parser.ParseBatch(context.Background(), descriptions)

	require.Len(t, results, len(descriptions))
	assert.Equal(t, "depreciation", results[0].CategoryKey)
	assert.Equal(t, "meals", results[1].CategoryKey)
	assert.Equal(t, descriptions[2], results[2].Description)
	assert.Equal(t, "other", results[3].CategoryKey)
}
