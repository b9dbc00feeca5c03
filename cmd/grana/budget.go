package main

import (
	"fmt"
	"strconv"

	"github.com/rafaelvbatista/grana/internal/cli"
	"github.com/rafaelvbatista/grana/internal/csvimport"
	"github.com/rafaelvbatista/grana/internal/model"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category budget limits",
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Set the monthly limit for a category",
		Long: `Set the monthly spending limit for one category. The limit accepts
both "1234.56" and Brazilian "1.234,56" notation.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			limit, err := csvimport.ParseAmount(args[1])
			if err != nil {
				limit, err = strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("invalid limit %q", args[1])
				}
			}

			budget := model.Budget{CategoryID: args[0], Limit: limit}
			if err := a.budgets.Set(cmd.Context(), budget); err != nil {
				return fmt.Errorf("failed to save budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to R$ %.2f/month", args[0], limit)))
			return nil
		},
	}
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			budgets, err := a.budgets.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load budgets: %w", err)
			}

			if len(budgets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No budgets configured. Use 'grana budget set' to add one."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Budgets"))
			for _, budget := range budgets {
				fmt.Printf("  %-20s R$ %.2f/month\n", budget.CategoryID, budget.Limit)
			}

			return nil
		},
	}
}
