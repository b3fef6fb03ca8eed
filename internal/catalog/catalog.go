// Package catalog holds the immutable Schedule C category table the engine
// classifies against. The catalog is built once at startup and injected into
// every component, so tests can swap in a smaller category set.
package catalog

import (
	"fmt"
	"strings"

	"github.com/fylr/fylr-engine/internal/model"
)

// Catalog is an immutable, validated set of category definitions plus the
// startup-cost keyword table. Declaration order is significant: the keyword
// classifier breaks ties by first-declared category.
type Catalog struct {
	index           map[string]int
	fallbackKey     string
	categories      []model.CategoryDefinition
	startupKeywords []string
}

// New builds a catalog from the given definitions. The fallback key must
// name one of the definitions; it is used whenever classification finds no
// match. Validation enforces the table invariants: unique keys, at least one
// keyword per category, deduction percentage within [0,100], and a non-empty
// Schedule C line.
func New(defs []model.CategoryDefinition, fallbackKey string, startupKeywords []string) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog requires at least one category definition")
	}

	index := make(map[string]int, len(defs))
	for i, def := range defs {
		if def.Key == "" {
			return nil, fmt.Errorf("category at position %d has an empty key", i)
		}
		if _, exists := index[def.Key]; exists {
			return nil, fmt.Errorf("duplicate category key: %s", def.Key)
		}
		if len(def.Keywords) == 0 {
			return nil, fmt.Errorf("category %s has no keywords", def.Key)
		}
		if def.DeductionPercentage < 0 || def.DeductionPercentage > 100 {
			return nil, fmt.Errorf("category %s has deduction percentage %d outside [0,100]", def.Key, def.DeductionPercentage)
		}
		if def.ScheduleCLine == "" {
			return nil, fmt.Errorf("category %s has an empty Schedule C line", def.Key)
		}
		index[def.Key] = i
	}

	if _, ok := index[fallbackKey]; !ok {
		return nil, fmt.Errorf("fallback key %s is not a defined category", fallbackKey)
	}

	return &Catalog{
		categories:      defs,
		index:           index,
		fallbackKey:     fallbackKey,
		startupKeywords: startupKeywords,
	}, nil
}

// Categories returns the definitions in declaration order. Callers must not
// mutate the returned slice.
func (c *Catalog) Categories() []model.CategoryDefinition {
	return c.categories
}

// Lookup finds a category definition by key.
func (c *Catalog) Lookup(key string) (model.CategoryDefinition, bool) {
	i, ok := c.index[key]
	if !ok {
		return model.CategoryDefinition{}, false
	}
	return c.categories[i], true
}

// Fallback returns the designated catch-all category.
func (c *Catalog) Fallback() model.CategoryDefinition {
	return c.categories[c.index[c.fallbackKey]]
}

// Keys returns all category keys in declaration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.categories))
	for i, def := range c.categories {
		keys[i] = def.Key
	}
	return keys
}

// IsStartupDescription reports whether the description mentions business
// formation or pre-opening spend.
func (c *Catalog) IsStartupDescription(description string) bool {
	desc := strings.ToLower(description)
	for _, kw := range c.startupKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
