package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fylr/fylr-engine/internal/model"
	"github.com/fylr/fylr-engine/internal/startup"
)

func optimizeCmd() *cobra.Command {
	var (
		revenue float64
		months  int
	)

	cmd := &cobra.Command{
		Use:   "optimize [amount]...",
		Short: "Optimize startup cost deductions",
		Long: `Apply the IRC section 195 rules to a list of startup cost
amounts: up to $5,000 deductible immediately (phased out over $50,000 of
total costs), the remainder amortized over 180 months.

Examples:
  fylr optimize 800 3500
  fylr optimize --revenue 20000 --months 6 12000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			expenses := make([]model.StartupExpense, 0, len(args))
			for _, arg := range args {
				amount, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", arg, err)
				}
				expenses = append(expenses, model.StartupExpense{
					Amount:        amount,
					IsStartupCost: true,
				})
			}

			optimizer := startup.NewOptimizer(slog.Default())
			result := optimizer.OptimizeWithMonths(expenses, revenue, months)

			return printJSON(result)
		},
	}

	cmd.Flags().Float64Var(&revenue, "revenue", 0, "annual revenue")
	cmd.Flags().IntVar(&months, "months", 12, "months the business operates in its first year")

	return cmd
}
