package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fylr/fylr-engine/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidEntry = errors.New("invalid ledger entry")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateEntry validates a single ledger entry.
func validateEntry(entry *model.LedgerEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNilParameter)
	}
	if strings.TrimSpace(entry.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidEntry)
	}
	if strings.TrimSpace(entry.Description) == "" {
		return fmt.Errorf("%w: missing description", ErrInvalidEntry)
	}
	if strings.TrimSpace(entry.CategoryKey) == "" {
		return fmt.Errorf("%w: missing category key", ErrInvalidEntry)
	}
	if entry.Amount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidEntry)
	}
	return nil
}
