package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelvbatista/grana/internal/common"
	"github.com/rafaelvbatista/grana/internal/model"
)

// TransactionStore persists the transaction list as one JSON document.
type TransactionStore struct {
	kv KV
}

// NewTransactionStore creates a transaction store over the given KV backend.
func NewTransactionStore(kv KV) *TransactionStore {
	return &TransactionStore{kv: kv}
}

// List returns all persisted transactions, empty when none were saved yet.
func (s *TransactionStore) List(ctx context.Context) ([]model.Transaction, error) {
	raw, found, err := s.kv.Get(ctx, KeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if !found {
		return []model.Transaction{}, nil
	}

	var txns []model.Transaction
	if err := json.Unmarshal([]byte(raw), &txns); err != nil {
		return nil, fmt.Errorf("%w: transactions: %v", common.ErrMalformedRecord, err)
	}
	return txns, nil
}

// SaveAll overwrites the persisted transaction list.
func (s *TransactionStore) SaveAll(ctx context.Context, txns []model.Transaction) error {
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := s.kv.Set(ctx, KeyTransactions, string(data)); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// Append adds transactions, skipping any whose hash is already present.
// Returns how many were actually added.
func (s *TransactionStore) Append(ctx context.Context, txns []model.Transaction) (int, error) {
	existing, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(existing))
	for _, txn := range existing {
		if txn.Hash != "" {
			seen[txn.Hash] = true
		}
	}

	added := 0
	for _, txn := range txns {
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}
		if seen[txn.Hash] {
			continue
		}
		seen[txn.Hash] = true
		existing = append(existing, txn)
		added++
	}

	if err := s.SaveAll(ctx, existing); err != nil {
		return 0, err
	}
	return added, nil
}

// UpdateCategory sets the category on one transaction and marks it as a
// manual (user-made) assignment.
func (s *TransactionStore) UpdateCategory(ctx context.Context, id, categoryID string) error {
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if err := validateString(categoryID, "categoryID"); err != nil {
		return err
	}

	txns, err := s.List(ctx)
	if err != nil {
		return err
	}

	for i := range txns {
		if txns[i].ID == id {
			txns[i].Category = categoryID
			txns[i].IsManual = true
			return s.SaveAll(ctx, txns)
		}
	}

	return fmt.Errorf("%w: transaction %q", common.ErrNotFound, id)
}
