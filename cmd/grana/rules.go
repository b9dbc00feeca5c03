package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rafaelvbatista/grana/internal/cli"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect learned categorization rules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all learned rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			rules, err := a.rules.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}

			if len(rules) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No learned rules yet. Use 'grana learn' to create some."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "KEYWORD\tCATEGORY\tCONFIDENCE\tUSES\tLAST USED")
			for _, rule := range rules {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%s\n",
					rule.Keyword, rule.CategoryID, rule.Confidence, rule.UsageCount,
					rule.LastUsed.Format("2006-01-02"))
			}

			return nil
		},
	})

	return cmd
}
