// Package service defines the interfaces between the engine's components.
package service

import (
	"context"
	"time"

	"github.com/fylr/fylr-engine/internal/model"
)

// EntryFilter narrows ListEntries results. Zero values mean no constraint.
type EntryFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	CategoryKey string
	Limit       int
}

// Storage defines the interface for ledger persistence.
type Storage interface {
	// SaveEntry persists a single ledger entry.
	SaveEntry(ctx context.Context, entry *model.LedgerEntry) error

	// GetEntry retrieves a ledger entry by ID.
	GetEntry(ctx context.Context, id string) (*model.LedgerEntry, error)

	// ListEntries retrieves entries matching the filter, newest first.
	ListEntries(ctx context.Context, filter EntryFilter) ([]model.LedgerEntry, error)

	// Migrate applies any pending schema migrations.
	Migrate(ctx context.Context) error

	// Close releases database resources.
	Close() error
}
