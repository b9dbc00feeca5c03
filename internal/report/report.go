// Package report computes per-category spending summaries and budget
// alerts. It only produces data; rendering belongs to the caller.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/rafaelvbatista/grana/internal/model"
	"github.com/rafaelvbatista/grana/internal/storage"
)

// alertWarningRatio is how much of a budget may be spent before the
// category is flagged as near its limit.
const alertWarningRatio = 0.8

// CategoryTotal is the spend aggregated for one category.
type CategoryTotal struct {
	CategoryID string  `json:"category_id"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
}

// AlertLevel grades how close a category is to its budget.
type AlertLevel string

// Alert levels.
const (
	AlertNearLimit AlertLevel = "near_limit"
	AlertOverLimit AlertLevel = "over_limit"
)

// BudgetAlert flags one category against its configured limit.
type BudgetAlert struct {
	CategoryID string     `json:"category_id"`
	Level      AlertLevel `json:"level"`
	Spent      float64    `json:"spent"`
	Limit      float64    `json:"limit"`
}

// Reporter aggregates persisted transactions against budgets.
type Reporter struct {
	transactions *storage.TransactionStore
	budgets      *storage.BudgetStore
}

// NewReporter creates a reporter over the given stores.
func NewReporter(transactions *storage.TransactionStore, budgets *storage.BudgetStore) *Reporter {
	return &Reporter{transactions: transactions, budgets: budgets}
}

// CategorySummary totals spending per category between start and end
// (inclusive). Only negative amounts (outflows) count as spending; the
// totals are reported as positive values, largest first.
func (r *Reporter) CategorySummary(ctx context.Context, start, end time.Time) ([]CategoryTotal, error) {
	txns, err := r.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*CategoryTotal)
	for _, txn := range txns {
		if txn.Amount >= 0 {
			continue
		}
		if txn.Date.Before(start) || txn.Date.After(end) {
			continue
		}

		category := txn.Category
		if category == "" {
			category = model.DefaultCategory
		}
		entry, ok := totals[category]
		if !ok {
			entry = &CategoryTotal{CategoryID: category}
			totals[category] = entry
		}
		entry.Total += -txn.Amount
		entry.Count++
	}

	summary := make([]CategoryTotal, 0, len(totals))
	for _, entry := range totals {
		summary = append(summary, *entry)
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Total != summary[j].Total {
			return summary[i].Total > summary[j].Total
		}
		return summary[i].CategoryID < summary[j].CategoryID
	})

	return summary, nil
}

// BudgetAlerts compares the period's spending with the configured
// budgets and flags categories near or over their limit.
func (r *Reporter) BudgetAlerts(ctx context.Context, start, end time.Time) ([]BudgetAlert, error) {
	summary, err := r.CategorySummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	budgets, err := r.budgets.List(ctx)
	if err != nil {
		return nil, err
	}

	spent := make(map[string]float64, len(summary))
	for _, entry := range summary {
		spent[entry.CategoryID] = entry.Total
	}

	var alerts []BudgetAlert
	for _, budget := range budgets {
		if budget.Limit <= 0 {
			continue
		}
		total := spent[budget.CategoryID]
		switch {
		case total > budget.Limit:
			alerts = append(alerts, BudgetAlert{
				CategoryID: budget.CategoryID,
				Level:      AlertOverLimit,
				Spent:      total,
				Limit:      budget.Limit,
			})
		case total >= budget.Limit*alertWarningRatio:
			alerts = append(alerts, BudgetAlert{
				CategoryID: budget.CategoryID,
				Level:      AlertNearLimit,
				Spent:      total,
				Limit:      budget.Limit,
			})
		}
	}

	return alerts, nil
}
