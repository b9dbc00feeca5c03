package main

import (
	"fmt"

	"github.com/rafaelvbatista/grana/internal/config"
	"github.com/rafaelvbatista/grana/internal/engine"
	"github.com/rafaelvbatista/grana/internal/storage"
	"github.com/rafaelvbatista/grana/internal/taxonomy"
	"github.com/spf13/viper"
)

// app bundles the wired application components a command needs.
type app struct {
	kv           *storage.SQLiteKV
	taxonomy     *taxonomy.Taxonomy
	categorizer  *engine.Categorizer
	transactions *storage.TransactionStore
	budgets      *storage.BudgetStore
	rules        *storage.RuleStore
}

// initApp wires the storage backend, taxonomy, and categorizer from
// configuration.
func initApp() (*app, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	kv, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	tax := taxonomy.Default()
	if taxPath := viper.GetString("taxonomy.path"); taxPath != "" {
		tax, err = taxonomy.LoadFile(config.ExpandPath(taxPath))
		if err != nil {
			_ = kv.Close()
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
	}

	rules := storage.NewRuleStore(kv)

	return &app{
		kv:           kv,
		taxonomy:     tax,
		categorizer:  engine.New(tax, rules),
		transactions: storage.NewTransactionStore(kv),
		budgets:      storage.NewBudgetStore(kv),
		rules:        rules,
	}, nil
}

// Close releases the storage backend.
func (a *app) Close() error {
	return a.kv.Close()
}
