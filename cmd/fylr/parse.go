package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	var amount float64
	var amountSet bool

	cmd := &cobra.Command{
		Use:   "parse [description]",
		Short: "Parse a natural language expense description",
		Long: `Parse a plain-English expense description into a Schedule C
classification with deduction guidance.

Examples:
  fylr parse "I bought a laptop for $3,000"
  fylr parse --amount 1200 "Monthly office rent"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")

			parser, cleanup, err := createParser()
			if err != nil {
				return err
			}
			defer cleanup()

			var amt *float64
			if amountSet {
				amt = &amount
			}

			expense := parser.Parse(cmd.Context(), description, amt)

			return printJSON(expense)
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount (extracted from text if omitted)")
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		amountSet = cmd.Flags().Changed("amount")
	}

	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
