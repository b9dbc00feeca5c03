package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rafaelvbatista/grana/internal/cli"
	"github.com/rafaelvbatista/grana/internal/report"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show per-category spending and budget alerts",
		Long: `Summarize spending per category for one month and flag categories
that are near or over their budget.

Examples:
  grana report
  grana report --month 2026-07`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			start, end, err := monthRange(month)
			if err != nil {
				return err
			}

			reporter := report.NewReporter(a.transactions, a.budgets)

			summary, err := reporter.CategorySummary(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("failed to build summary: %w", err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Spending %s", start.Format("January 2006"))))
			if len(summary) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No spending recorded for this period."))
			} else {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "CATEGORY\tTOTAL\tTRANSACTIONS")
				for _, entry := range summary {
					fmt.Fprintf(w, "%s\tR$ %.2f\t%d\n", entry.CategoryID, entry.Total, entry.Count)
				}
				_ = w.Flush()
			}

			alerts, err := reporter.BudgetAlerts(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("failed to build alerts: %w", err)
			}
			for _, alert := range alerts {
				msg := fmt.Sprintf("%s: R$ %.2f of R$ %.2f", alert.CategoryID, alert.Spent, alert.Limit)
				if alert.Level == report.AlertOverLimit {
					fmt.Println(cli.FormatError("over budget  " + msg))
				} else {
					fmt.Println(cli.FormatWarning("near budget  " + msg))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to report (YYYY-MM, default: current)")

	return cmd
}

func monthRange(month string) (time.Time, time.Time, error) {
	var start time.Time
	if month == "" {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, want YYYY-MM", month)
		}
		start = parsed
	}
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}
