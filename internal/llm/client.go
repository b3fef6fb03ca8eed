// Package llm provides the optional language-model classification path.
// When no provider is configured the engine's keyword classifier stands
// alone; when one is, the llm.Classifier decorates it with an external call
// that degrades back to keywords on any failure.
package llm

import "context"

// Client defines the interface for LLM providers.
type Client interface {
	Classify(ctx context.Context, prompt string) (ClassificationResponse, error)
}

// ClassificationResponse contains the LLM's classification result.
type ClassificationResponse struct {
	Category   string
	Guidance   string
	Confidence float64
}
