package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fylr/fylr-engine/internal/catalog"
	"github.com/fylr/fylr-engine/internal/engine"
)

// Classifier implements the engine.Classifier interface using LLM APIs,
// composed over a deterministic fallback. Any failure on the model path —
// unreachable service, malformed response, unknown category key, confidence
// out of range, exhausted rate budget — resolves that single request through
// the fallback classifier. There are no inline retries: a human is waiting,
// and one failed attempt must not stretch the interactive latency budget.
type Classifier struct {
	client   Client
	fallback engine.Classifier
	catalog  *catalog.Catalog
	cache    *suggestionCache
	limiter  *rateLimiter
	logger   *slog.Logger
}

// Config holds configuration for the LLM classifier.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	CacheTTL    time.Duration
	RateLimit   int
}

// NewClassifier creates a new LLM-backed classifier that degrades to the
// given fallback.
func NewClassifier(cfg Config, fallback engine.Classifier, cat *catalog.Catalog, logger *slog.Logger) (*Classifier, error) {
	var client Client
	var err error

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		client, err = newOpenAIClient(cfg)
	case "anthropic":
		client, err = newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Classifier{
		client:   client,
		fallback: fallback,
		catalog:  cat,
		cache:    newSuggestionCache(cfg.CacheTTL),
		limiter:  newRateLimiter(cfg.RateLimit),
		logger:   logger,
	}, nil
}

// Classify asks the model for a category, validating the structured response
// against the catalog. The returned error is always nil: every failure mode
// falls through to the fallback classifier for this one request.
func (c *Classifier) Classify(ctx context.Context, description string, amount *float64) (engine.Classification, error) {
	key := cacheKey(description)

	if cached, found := c.cache.get(key); found {
		c.logger.Debug("classification cache hit")
		return cached, nil
	}

	if !c.limiter.tryAcquire() {
		c.logger.Debug("rate budget exhausted, using keyword classification")
		return c.fallback.Classify(ctx, description, amount)
	}

	response, err := c.client.Classify(ctx, c.buildPrompt(description, amount))
	if err != nil {
		c.logger.Warn("LLM classification failed, using keyword classification",
			"error", err)
		return c.fallback.Classify(ctx, description, amount)
	}

	if _, ok := c.catalog.Lookup(response.Category); !ok {
		c.logger.Warn("LLM returned unknown category, using keyword classification",
			"category", response.Category)
		return c.fallback.Classify(ctx, description, amount)
	}

	if response.Confidence < 0 || response.Confidence > 1 {
		c.logger.Warn("LLM returned confidence outside [0,1], using keyword classification",
			"confidence", response.Confidence)
		return c.fallback.Classify(ctx, description, amount)
	}

	classification := engine.Classification{
		CategoryKey:      response.Category,
		Confidence:       response.Confidence,
		GuidanceOverride: response.Guidance,
	}

	c.cache.set(key, classification)

	c.logger.Info("expense classified by model",
		"category", classification.CategoryKey,
		"confidence", classification.Confidence)

	return classification, nil
}

// buildPrompt creates the classification prompt, constraining the model to
// the catalog's known category keys.
func (c *Classifier) buildPrompt(description string, amount *float64) string {
	details := fmt.Sprintf("Expense: %q", description)
	if amount != nil {
		details += fmt.Sprintf("\nAmount: $%.2f", *amount)
	}

	return fmt.Sprintf(`Classify this business expense for IRS Schedule C.

%s

Valid category keys (choose exactly one):
%s

Respond with a JSON object in this exact schema:
{
  "category": "<one of the valid keys>",
  "confidence": <0.0 to 1.0>,
  "irs_guidance": "<one sentence on the relevant IRS rule>"
}

Consider:
- Laptops, computers, machinery = depreciation (section 179)
- Meals = 50%% deductible, line 24b
- Professional fees = legal_professional
- Marketing and ads = advertising`,
		details,
		"- "+strings.Join(c.catalog.Keys(), "\n- "))
}

// cacheKey normalizes a description for cache lookup.
func cacheKey(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

// Close stops background goroutines and cleans up resources.
func (c *Classifier) Close() error {
	if c.cache != nil {
		c.cache.Close()
	}
	if c.limiter != nil {
		c.limiter.Close()
	}
	return nil
}
