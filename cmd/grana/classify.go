package main

import (
	"fmt"
	"strings"

	"github.com/rafaelvbatista/grana/internal/cli"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <description>",
		Short: "Classify a transaction description",
		Long: `Classify a free-text transaction description and print the category,
confidence, and which keywords matched.

Examples:
  grana classify "ifood pedido 8812"
  grana classify "uber viagem centro"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			description := strings.Join(args, " ")
			result := a.categorizer.Classify(cmd.Context(), description)

			fmt.Println(cli.FormatTitle("Classification"))
			fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Category:"), result.CategoryID)
			fmt.Printf("  %s %.2f\n", cli.BoldStyle.Render("Confidence:"), result.Confidence)
			fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Method:"), result.Method)
			if len(result.MatchedKeywords) > 0 {
				fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Matched:"), strings.Join(result.MatchedKeywords, ", "))
			}

			return nil
		},
	}
}
