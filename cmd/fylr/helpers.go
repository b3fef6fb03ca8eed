package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/fylr/fylr-engine/internal/catalog"
	"github.com/fylr/fylr-engine/internal/config"
	"github.com/fylr/fylr-engine/internal/engine"
	"github.com/fylr/fylr-engine/internal/llm"
	"github.com/fylr/fylr-engine/internal/service"
	"github.com/fylr/fylr-engine/internal/storage"
)

// createClassifier builds the classifier chain: the keyword classifier
// always, decorated with an LLM classifier when a provider is configured.
// Shared by every command that parses expenses.
func createClassifier(cat *catalog.Catalog) (engine.Classifier, func(), error) {
	keyword := engine.NewKeywordClassifier(cat)

	provider := viper.GetString("llm.provider")
	if provider == "" {
		// No provider configured: pure keyword matching.
		return keyword, func() {}, nil
	}

	cfg := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		Timeout:     viper.GetDuration("llm.timeout"),
		CacheTTL:    viper.GetDuration("llm.cache_ttl"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
	}

	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 15 * time.Minute
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 60 // requests per minute
	}

	switch provider {
	case "anthropic":
		apiKey := viper.GetString("llm.anthropic_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, nil, fmt.Errorf("anthropic API key not found in config or ANTHROPIC_API_KEY environment variable")
		}
		cfg.APIKey = apiKey

	case "openai":
		apiKey := viper.GetString("llm.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, nil, fmt.Errorf("OpenAI API key not found in config or OPENAI_API_KEY environment variable")
		}
		cfg.APIKey = apiKey

	default:
		return nil, nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}

	classifier, err := llm.NewClassifier(cfg, keyword, cat, slog.Default())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM classifier: %w", err)
	}

	return classifier, func() { _ = classifier.Close() }, nil
}

// createParser builds the full parsing pipeline over the built-in catalog.
func createParser() (*engine.Parser, func(), error) {
	cat := catalog.Default()

	classifier, cleanup, err := createClassifier(cat)
	if err != nil {
		return nil, nil, err
	}

	return engine.NewParser(cat, classifier, slog.Default()), cleanup, nil
}

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/fylr/fylr.db"
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
