package main

import (
	"fmt"
	"strings"

	"github.com/rafaelvbatista/grana/internal/cli"
	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <description>",
		Short: "Suggest likely categories for a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			description := strings.Join(args, " ")
			suggestions := a.categorizer.SuggestCategories(cmd.Context(), description, limit)

			fmt.Println(cli.FormatTitle("Suggestions"))
			for i, categoryID := range suggestions {
				fmt.Printf("  %d. %s\n", i+1, categoryID)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 3, "maximum number of suggestions")

	return cmd
}
