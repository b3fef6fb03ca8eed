package engine

import (
	"context"
	"strings"

	"github.com/fylr/fylr-engine/internal/catalog"
)

// Confidence policy for keyword classification. One keyword hit earns the
// base; each additional distinct hit adds a step, capped below certainty.
const (
	keywordBaseConfidence = 0.6
	keywordHitStep        = 0.1
	keywordMaxConfidence  = 0.95
	fallbackConfidence    = 0.3
)

// KeywordClassifier scores a description against the catalog keyword sets.
// It is a pure function of its inputs: identical input always yields an
// identical result, with hit-count ties resolved by category declaration
// order.
type KeywordClassifier struct {
	catalog *catalog.Catalog
}

// NewKeywordClassifier creates a classifier over the given catalog.
func NewKeywordClassifier(cat *catalog.Catalog) *KeywordClassifier {
	return &KeywordClassifier{catalog: cat}
}

// Classify picks the category with the most keyword hits. Zero hits resolve
// to the catalog fallback with the designated low confidence. The returned
// error is always nil; it exists to satisfy the Classifier contract.
func (k *KeywordClassifier) Classify(_ context.Context, description string, _ *float64) (Classification, error) {
	desc := strings.ToLower(description)

	bestHits := 0
	var bestKey string
	for _, def := range k.catalog.Categories() {
		hits := 0
		for _, kw := range def.Keywords {
			if strings.Contains(desc, kw) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestKey = def.Key
		}
	}

	if bestHits == 0 {
		return Classification{
			CategoryKey: k.catalog.Fallback().Key,
			Confidence:  fallbackConfidence,
		}, nil
	}

	confidence := keywordBaseConfidence + keywordHitStep*float64(bestHits-1)
	if confidence > keywordMaxConfidence {
		confidence = keywordMaxConfidence
	}

	return Classification{
		CategoryKey: bestKey,
		Confidence:  confidence,
	}, nil
}
