package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fylr/fylr-engine/internal/ledger"
	"github.com/fylr/fylr-engine/internal/service"
)

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Record and review classified expenses",
	}

	cmd.AddCommand(ledgerAddCmd())
	cmd.AddCommand(ledgerListCmd())
	cmd.AddCommand(ledgerScoreCmd())

	return cmd
}

func createLedger(cmd *cobra.Command) (*ledger.Ledger, func(), error) {
	parser, parserCleanup, err := createParser()
	if err != nil {
		return nil, nil, err
	}

	store, err := initStorage(cmd.Context())
	if err != nil {
		parserCleanup()
		return nil, nil, err
	}

	cleanup := func() {
		_ = store.Close()
		parserCleanup()
	}

	return ledger.New(parser, store, slog.Default()), cleanup, nil
}

func ledgerAddCmd() *cobra.Command {
	var (
		amount     float64
		dateStr    string
		receiptURL string
	)

	cmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Classify an expense and record it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")

			books, cleanup, err := createLedger(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			date := time.Now().UTC()
			if dateStr != "" {
				parsed, parseErr := time.Parse("2006-01-02", dateStr)
				if parseErr != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
				}
				date = parsed
			}

			var amt *float64
			if cmd.Flags().Changed("amount") {
				amt = &amount
			}

			result, err := books.Add(cmd.Context(), description, amt, date, receiptURL)
			if err != nil {
				return err
			}

			return printJSON(result)
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount (extracted from text if omitted)")
	cmd.Flags().StringVar(&dateStr, "date", "", "expense date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&receiptURL, "receipt", "", "receipt URL or file reference")

	return cmd
}

func ledgerListCmd() *cobra.Command {
	var (
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			books, cleanup, err := createLedger(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := books.List(cmd.Context(), service.EntryFilter{
				CategoryKey: category,
				Limit:       limit,
			})
			if err != nil {
				return err
			}

			return printJSON(entries)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category key")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to return (0 = all)")

	return cmd
}

func ledgerScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the tax readiness score for recorded expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			books, cleanup, err := createLedger(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			score, err := books.Readiness(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(score)
		},
	}
}
