package main

import (
	"fmt"
	"strings"

	"github.com/rafaelvbatista/grana/internal/cli"
	"github.com/spf13/cobra"
)

func learnCmd() *cobra.Command {
	var transactionID string

	cmd := &cobra.Command{
		Use:   "learn <description> <category>",
		Short: "Teach the categorizer the right category for a description",
		Long: `Record a correction: the engine creates or reinforces one learned rule
per word of the description, plus one for the full phrase. Future
classifications of similar descriptions will prefer this category.

Examples:
  grana learn "uber viagem centro" transporte
  grana learn "padoca do ze" alimentacao --transaction csv-12-20260815`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			categoryID := args[len(args)-1]
			description := strings.Join(args[:len(args)-1], " ")

			a.categorizer.Learn(cmd.Context(), description, categoryID)

			if transactionID != "" {
				if err := a.transactions.UpdateCategory(cmd.Context(), transactionID, categoryID); err != nil {
					return fmt.Errorf("rule learned, but failed to update transaction: %w", err)
				}
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Learned: %q → %s", description, categoryID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&transactionID, "transaction", "", "also re-categorize this stored transaction")

	return cmd
}
