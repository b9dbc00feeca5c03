package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Transaction represents a single financial transaction from any source
// (manual entry, CSV import, OFX import).
type Transaction struct {
	Date        time.Time `json:"date"`
	ID          string    `json:"id"`
	Description string    `json:"description"` // Raw transaction description
	Account     string    `json:"account,omitempty"`
	Category    string    `json:"category,omitempty"`
	Hash        string    `json:"hash,omitempty"`
	Amount      float64   `json:"amount"`
	IsManual    bool      `json:"is_manual"` // Category set by the user, not the engine
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Description,
		t.Account)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
