package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fylr/fylr-engine/internal/complexity"
	"github.com/fylr/fylr-engine/internal/model"
)

func assessCmd() *cobra.Command {
	var (
		hasEmployees bool
		hasInventory bool
		revenue      float64
	)

	cmd := &cobra.Command{
		Use:   "assess [description]...",
		Short: "Assess business tax complexity",
		Long: `Score business complexity from expense descriptions and profile
flags, recommending a service tier and the tax forms likely needed.

Examples:
  fylr assess "Hired 3 employees this year" "Bought inventory from a supplier"
  fylr assess --employees --revenue 350000 "Paid quarterly payroll"`,
		RunE: func(_ *cobra.Command, args []string) error {
			profile := model.BusinessProfile{
				HasEmployees:  hasEmployees,
				HasInventory:  hasInventory,
				AnnualRevenue: revenue,
			}

			assessor := complexity.NewAssessor(slog.Default())
			result := assessor.Assess(args, profile)

			return printJSON(result)
		},
	}

	cmd.Flags().BoolVar(&hasEmployees, "employees", false, "business has employees")
	cmd.Flags().BoolVar(&hasInventory, "inventory", false, "business carries inventory")
	cmd.Flags().Float64Var(&revenue, "revenue", 0, "annual revenue")

	return cmd
}
