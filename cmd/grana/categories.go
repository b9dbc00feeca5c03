package main

import (
	"fmt"

	"github.com/rafaelvbatista/grana/internal/cli"
	"github.com/rafaelvbatista/grana/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List taxonomy categories",
		Long: `List the category buckets of the active taxonomy, in lookup order.
The order matters: exact classification returns the first category
whose keyword the description contains.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			fmt.Println(cli.FormatTitle("Categories"))
			for i, id := range a.taxonomy.CategoryIDs() {
				fmt.Printf("  %2d. %s\n", i+1, id)
			}
			fmt.Printf("  --  %s %s\n", model.DefaultCategory, cli.SubtleStyle.Render("(fallback)"))

			return nil
		},
	}
}
