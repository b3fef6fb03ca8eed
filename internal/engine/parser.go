package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fylr/fylr-engine/internal/catalog"
	"github.com/fylr/fylr-engine/internal/model"
)

// Parser turns a free-text expense description into a fully populated
// Expense record. It is the single entry point for "parse one expense".
type Parser struct {
	catalog    *catalog.Catalog
	classifier Classifier
	logger     *slog.Logger
}

// NewParser creates a parser over the given catalog and classifier. The
// classifier decides the AI-versus-keyword path; the parser is agnostic.
func NewParser(cat *catalog.Catalog, classifier Classifier, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		catalog:    cat,
		classifier: classifier,
		logger:     logger,
	}
}

// Parse classifies one expense. It never fails for malformed input: the
// worst case is an absent amount, the fallback category, and the designated
// low confidence.
func (p *Parser) Parse(ctx context.Context, description string, amount *float64) model.Expense {
	if amount == nil {
		if v, ok := ExtractAmount(description); ok {
			amount = &v
		}
	}

	classification, err := p.classifier.Classify(ctx, description, amount)
	if err != nil {
		// Classifiers recover internally; this path only fires on a broken
		// implementation, so fail closed to the catalog fallback.
		p.logger.Warn("classifier returned an error, using fallback category",
			"error", err)
		classification = Classification{
			CategoryKey: p.catalog.Fallback().Key,
			Confidence:  fallbackConfidence,
		}
	}

	def, ok := p.catalog.Lookup(classification.CategoryKey)
	if !ok {
		p.logger.Warn("classifier returned unknown category key, using fallback",
			"category_key", classification.CategoryKey)
		def = p.catalog.Fallback()
		classification.Confidence = fallbackConfidence
	}

	guidance := def.IRSGuidance
	if classification.GuidanceOverride != "" {
		guidance = classification.GuidanceOverride
	}

	expense := model.Expense{
		Description:           description,
		Amount:                amount,
		CategoryKey:           def.Key,
		IRSCategory:           def.IRSCategoryName,
		ScheduleCLine:         def.ScheduleCLine,
		ScheduleCDescription:  def.ScheduleCDescription,
		DeductionPercentage:   def.DeductionPercentage,
		IsStartupCost:         def.IsStartupCost || p.catalog.IsStartupDescription(description),
		RequiresDocumentation: def.RequiresDocumentation,
		AuditRisk:             def.AuditRisk,
		IRSGuidance:           guidance,
		Confidence:            classification.Confidence,
	}

	p.logger.Debug("expense parsed",
		"category_key", expense.CategoryKey,
		"schedule_c_line", expense.ScheduleCLine,
		"confidence", expense.Confidence,
		"has_amount", expense.Amount != nil)

	return expense
}

// maxParseWorkers bounds concurrent classification in batch parsing.
const maxParseWorkers = 5

// ParseBatch parses many descriptions independently. Iterations share no
// mutable state, so they run concurrently behind a bounded worker pool.
// Results keep input order.
func (p *Parser) ParseBatch(ctx context.Context, descriptions []string) []model.Expense {
	results := make([]model.Expense, len(descriptions))

	sem := make(chan struct{}, maxParseWorkers)
	var wg sync.WaitGroup

	for i, desc := range descriptions {
		wg.Add(1)
		go func(idx int, description string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				// Still produce a well-formed record for this item; the
				// classifier falls back to the deterministic keyword path
				// once its context is gone.
			}

			results[idx] = p.Parse(ctx, description, nil)
		}(i, desc)
	}

	wg.Wait()
	return results
}
