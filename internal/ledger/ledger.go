// Package ledger records classified expenses and scores how tax-ready the
// resulting books are.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fylr/fylr-engine/internal/engine"
	"github.com/fylr/fylr-engine/internal/model"
	"github.com/fylr/fylr-engine/internal/service"
)

// Combined effective tax rate (federal + state + self-employment) used for
// savings estimates.
const effectiveTaxRate = 0.35

// An entry counts as categorized when classification confidence clears this
// bar.
const categorizedConfidenceFloor = 0.7

// Ledger parses expense descriptions and persists them as entries.
type Ledger struct {
	parser *engine.Parser
	store  service.Storage
	logger *slog.Logger
}

// New creates a Ledger.
func New(parser *engine.Parser, store service.Storage, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		parser: parser,
		store:  store,
		logger: logger,
	}
}

// AddResult is what callers get back after recording an expense.
type AddResult struct {
	Entry              model.LedgerEntry `json:"entry"`
	Expense            model.Expense     `json:"expense"`
	TaxSavingsEstimate float64           `json:"tax_savings_estimate"`
}

// Add classifies a description and records it as a ledger entry. A nil
// amount lets the parser infer one from the text; an unresolvable amount is
// stored as zero.
func (l *Ledger) Add(ctx context.Context, description string, amount *float64, date time.Time, receiptURL string) (*AddResult, error) {
	expense := l.parser.Parse(ctx, description, amount)

	var amountValue float64
	if expense.Amount != nil {
		amountValue = *expense.Amount
	}

	entry := model.LedgerEntry{
		ID:            uuid.New().String(),
		Date:          date,
		Description:   description,
		Amount:        amountValue,
		CategoryKey:   expense.CategoryKey,
		IRSCategory:   expense.IRSCategory,
		Confidence:    expense.Confidence,
		TaxDeductible: expense.DeductionPercentage > 0,
		ReceiptURL:    receiptURL,
		CreatedAt:     time.Now().UTC(),
	}

	if err := l.store.SaveEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	l.logger.Info("expense recorded",
		"id", entry.ID,
		"category", entry.CategoryKey,
		"amount", entry.Amount)

	return &AddResult{
		Entry:              entry,
		Expense:            expense,
		TaxSavingsEstimate: EstimateTaxSavings(expense),
	}, nil
}

// List returns entries matching the filter.
func (l *Ledger) List(ctx context.Context, filter service.EntryFilter) ([]model.LedgerEntry, error) {
	return l.store.ListEntries(ctx, filter)
}

// Get returns a single entry by ID.
func (l *Ledger) Get(ctx context.Context, id string) (*model.LedgerEntry, error) {
	return l.store.GetEntry(ctx, id)
}

// EstimateTaxSavings estimates the tax saved by deducting an expense at the
// combined effective rate.
func EstimateTaxSavings(expense model.Expense) float64 {
	return expense.DeductibleAmount() * effectiveTaxRate
}

// ReadinessScore summarizes how audit-ready the recorded books are.
type ReadinessScore struct {
	Score               float64  `json:"score"`
	TotalEntries        int      `json:"total_entries"`
	CategorizedEntries  int      `json:"categorized_entries"`
	EntriesWithReceipts int      `json:"entries_with_receipts"`
	Recommendations     []string `json:"recommendations"`
}

// Readiness scores the ledger: 40 points for confident categorization, 30
// for receipt coverage, 30 for tracking volume (full marks at 50 entries).
func (l *Ledger) Readiness(ctx context.Context) (*ReadinessScore, error) {
	entries, err := l.store.ListEntries(ctx, service.EntryFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	if len(entries) == 0 {
		return &ReadinessScore{
			Recommendations: []string{"No expenses tracked yet"},
		}, nil
	}

	total := len(entries)
	categorized := 0
	withReceipts := 0
	for _, e := range entries {
		if e.CategoryKey != "" && e.Confidence > categorizedConfidenceFloor {
			categorized++
		}
		if e.ReceiptURL != "" {
			withReceipts++
		}
	}

	categorizationScore := float64(categorized) / float64(total) * 40
	receiptScore := float64(withReceipts) / float64(total) * 30
	volume := float64(total) / 50
	if volume > 1 {
		volume = 1
	}
	volumeScore := volume * 30

	score := categorizationScore + receiptScore + volumeScore

	return &ReadinessScore{
		Score:               score,
		TotalEntries:        total,
		CategorizedEntries:  categorized,
		EntriesWithReceipts: withReceipts,
		Recommendations:     readinessRecommendations(score),
	}, nil
}

func readinessRecommendations(score float64) []string {
	switch {
	case score < 30:
		return []string{
			"Start tracking expenses regularly",
			"Upload receipts for major purchases",
			"Review categorizations monthly",
		}
	case score < 60:
		return []string{
			"Upload missing receipts",
			"Review and confirm categorizations",
			"Track business mileage",
		}
	case score < 80:
		return []string{
			"Ensure all receipts are uploaded",
			"Review quarterly for missed deductions",
		}
	default:
		return []string{"Great job! Your records are tax-ready"}
	}
}
