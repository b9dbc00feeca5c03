package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rafaelvbatista/grana/internal/cli"
	"github.com/rafaelvbatista/grana/internal/common"
	"github.com/rafaelvbatista/grana/internal/csvimport"
	"github.com/rafaelvbatista/grana/internal/model"
	"github.com/rafaelvbatista/grana/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import and categorize transactions from CSV or OFX/QFX files",
		Long: `Import transactions from bank export files. Each transaction is run
through the categorizer; transactions the file already categorizes keep
their category. Duplicates (same date, amount, description, account)
are skipped.

Examples:
  grana import ~/Downloads/extrato.csv
  grana import ~/Downloads/nubank_*.ofx
  grana import --dry-run extrato.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			var all []model.Transaction
			for _, path := range args {
				txns, err := parseFile(cmd, path)
				if err != nil {
					return err
				}
				all = append(all, txns...)
			}

			if len(all) == 0 {
				fmt.Println(cli.FormatWarning("No transactions found in the given files"))
				return nil
			}

			bar := progressbar.NewOptions(len(all),
				progressbar.OptionSetDescription("Categorizing"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)

			categorized := make([]model.Transaction, 0, len(all))
			for _, item := range a.categorizer.ClassifyAll(cmd.Context(), all) {
				txn := item.Transaction
				if txn.Category == "" {
					txn.Category = item.Result.CategoryID
				} else {
					// The file's own category wins over the engine's guess
					txn.IsManual = true
				}
				categorized = append(categorized, txn)
				_ = bar.Add(1)
			}

			if dryRun {
				fmt.Println(cli.FormatTitle("Import preview"))
				for _, txn := range categorized {
					fmt.Printf("  %s  %-40s  %10.2f  %s\n",
						txn.Date.Format("2006-01-02"), truncate(txn.Description, 40), txn.Amount, txn.Category)
				}
				return nil
			}

			added, err := a.transactions.Append(cmd.Context(), categorized)
			if err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d duplicates skipped)",
				added, len(categorized)-added)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")

	return cmd
}

func parseFile(cmd *cobra.Command, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		result, err := csvimport.NewParser(csvimport.DefaultMapping()).ParseFile(cmd.Context(), f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for _, rowErr := range result.RowErrors {
			fmt.Fprintln(os.Stderr, cli.FormatWarning(fmt.Sprintf("%s: %v", filepath.Base(path), rowErr)))
		}
		return result.Transactions, nil
	case ".ofx", ".qfx":
		txns, err := ofx.NewParser().ParseFile(cmd.Context(), f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return txns, nil
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, path)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
