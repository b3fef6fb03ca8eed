// Package engine turns free-text expense descriptions into classified
// Expense records backed by the Schedule C catalog.
package engine

import "context"

// Classification is the outcome of categorizing one expense description.
type Classification struct {
	CategoryKey      string
	GuidanceOverride string // richer guidance some classifiers can supply
	Confidence       float64
}

// Classifier picks a Schedule C category for an expense description.
// Implementations must never fail a request outright: the keyword classifier
// is total, and the LLM classifier falls back to it internally, so a non-nil
// error is strictly a programming-contract escape hatch the parser guards
// against by substituting the catalog fallback.
type Classifier interface {
	Classify(ctx context.Context, description string, amount *float64) (Classification, error)
}
