package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelvbatista/grana/internal/common"
	"github.com/rafaelvbatista/grana/internal/model"
)

// BudgetStore persists per-category monthly budget limits.
type BudgetStore struct {
	kv KV
}

// NewBudgetStore creates a budget store over the given KV backend.
func NewBudgetStore(kv KV) *BudgetStore {
	return &BudgetStore{kv: kv}
}

// List returns all budgets, empty when none were saved yet.
func (s *BudgetStore) List(ctx context.Context) ([]model.Budget, error) {
	raw, found, err := s.kv.Get(ctx, KeyBudgets)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	if !found {
		return []model.Budget{}, nil
	}

	var budgets []model.Budget
	if err := json.Unmarshal([]byte(raw), &budgets); err != nil {
		return nil, fmt.Errorf("%w: budgets: %v", common.ErrMalformedRecord, err)
	}
	return budgets, nil
}

// Set creates or replaces the budget for one category.
func (s *BudgetStore) Set(ctx context.Context, budget model.Budget) error {
	if err := validateString(budget.CategoryID, "categoryID"); err != nil {
		return err
	}
	if budget.Limit < 0 {
		return fmt.Errorf("budget limit cannot be negative")
	}

	budgets, err := s.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range budgets {
		if budgets[i].CategoryID == budget.CategoryID {
			budgets[i] = budget
			replaced = true
			break
		}
	}
	if !replaced {
		budgets = append(budgets, budget)
	}

	data, err := json.Marshal(budgets)
	if err != nil {
		return fmt.Errorf("failed to encode budgets: %w", err)
	}
	if err := s.kv.Set(ctx, KeyBudgets, string(data)); err != nil {
		return fmt.Errorf("failed to save budgets: %w", err)
	}
	return nil
}
