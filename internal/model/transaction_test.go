package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHash(t *testing.T) {
	base := Transaction{
		Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Description: "ifood pedido 8812",
		Amount:      -25.50,
		Account:     "nubank",
	}

	assert.Equal(t, base.GenerateHash(), base.GenerateHash())

	changed := base
	changed.Amount = -25.51
	assert.NotEqual(t, base.GenerateHash(), changed.GenerateHash())

	changed = base
	changed.Description = "ifood pedido 8813"
	assert.NotEqual(t, base.GenerateHash(), changed.GenerateHash())

	// ID and category are not part of the identity
	changed = base
	changed.ID = "other"
	changed.Category = "alimentacao"
	assert.Equal(t, base.GenerateHash(), changed.GenerateHash())
}
