// Package storage provides the data persistence layer: a generic
// key-value surface with SQLite and in-memory backends, plus typed
// stores for learned rules, transactions, categories, and budgets.
package storage

import "context"

// Persisted record keys. Each record is a single JSON document fully
// overwritten on every save.
const (
	KeyRules        = "grana:rules"
	KeyTransactions = "grana:transactions"
	KeyBudgets      = "grana:budgets"
)

// KV is the minimal key-value contract the typed stores build on.
// Get returns found=false for an absent key; an error means the
// backend itself failed.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
