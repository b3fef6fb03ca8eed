package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fylr/fylr-engine/internal/complexity"
	"github.com/fylr/fylr-engine/internal/ledger"
	"github.com/fylr/fylr-engine/internal/server"
	"github.com/fylr/fylr-engine/internal/startup"
	"github.com/fylr/fylr-engine/internal/taxengine"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the intake HTTP API",
		Long: `Serve the intake engine over HTTP: expense parsing, complexity
assessment, startup cost optimization, and the expense ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.Default()

			parser, cleanup, err := createParser()
			if err != nil {
				return err
			}
			defer cleanup()

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			taxYear := viper.GetInt("tax.year")
			if taxYear == 0 {
				taxYear = taxengine.CurrentTaxYear(time.Now())
			}
			taxes, err := taxengine.NewEngine(taxYear)
			if err != nil {
				return fmt.Errorf("failed to initialize tax engine: %w", err)
			}

			books := ledger.New(parser, store, logger)

			srv := server.New(
				server.Config{Addr: addr},
				parser,
				complexity.NewAssessor(logger),
				startup.NewOptimizer(logger),
				taxes,
				books,
				logger,
			)

			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
