package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fylr/fylr-engine/internal/common"
	"github.com/fylr/fylr-engine/internal/model"
	"github.com/fylr/fylr-engine/internal/service"
)

// SaveEntry persists a single ledger entry.
func (s *SQLiteStorage) SaveEntry(ctx context.Context, entry *model.LedgerEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ledger_entries
			(id, date, description, amount, category_key, irs_category,
			 confidence, tax_deductible, receipt_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Date,
		entry.Description,
		entry.Amount,
		entry.CategoryKey,
		entry.IRSCategory,
		entry.Confidence,
		entry.TaxDeductible,
		entry.ReceiptURL,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return nil
}

// GetEntry retrieves a ledger entry by ID.
func (s *SQLiteStorage) GetEntry(ctx context.Context, id string) (*model.LedgerEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, description, amount, category_key, irs_category,
		       confidence, tax_deductible, receipt_url, created_at
		FROM ledger_entries
		WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger entry %s", common.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return entry, nil
}

// ListEntries retrieves entries matching the filter, newest first.
func (s *SQLiteStorage) ListEntries(ctx context.Context, filter service.EntryFilter) ([]model.LedgerEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, description, amount, category_key, irs_category,
		       confidence, tax_deductible, receipt_url, created_at
		FROM ledger_entries
		WHERE 1=1`
	args := make([]any, 0, 4)

	if filter.StartDate != nil {
		query += " AND date >= ?"
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query += " AND date <= ?"
		args = append(args, *filter.EndDate)
	}
	if filter.CategoryKey != "" {
		query += " AND category_key = ?"
		args = append(args, filter.CategoryKey)
	}

	query += " ORDER BY date DESC, created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.LedgerEntry
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", scanErr)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return entries, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*model.LedgerEntry, error) {
	var entry model.LedgerEntry
	var irsCategory, receiptURL sql.NullString

	err := row.Scan(
		&entry.ID,
		&entry.Date,
		&entry.Description,
		&entry.Amount,
		&entry.CategoryKey,
		&irsCategory,
		&entry.Confidence,
		&entry.TaxDeductible,
		&receiptURL,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.IRSCategory = irsCategory.String
	entry.ReceiptURL = receiptURL.String
	return &entry, nil
}
