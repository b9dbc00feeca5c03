package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByKeyword(t *testing.T) {
	tax := Default()

	tests := []struct {
		name         string
		description  string
		wantCategory string
		wantKeyword  string
		wantFound    bool
	}{
		{
			name:         "food delivery",
			description:  "IFOOD PEDIDO 8812",
			wantCategory: "alimentacao",
			wantKeyword:  "ifood",
			wantFound:    true,
		},
		{
			name:         "ride hailing",
			description:  "Uber *Trip 99201",
			wantCategory: "transporte",
			wantKeyword:  "uber",
			wantFound:    true,
		},
		{
			name:         "case insensitive",
			description:  "NETFLIX.COM ASSINATURA MENSAL",
			wantCategory: "lazer",
			wantKeyword:  "netflix",
			wantFound:    true,
		},
		{
			name:         "standalone bar",
			description:  "BAR DO ZE",
			wantCategory: "alimentacao",
			wantKeyword:  "bar ",
			wantFound:    true,
		},
		{
			name:         "barbearia is not a bar",
			description:  "BARBEARIA DO ZE",
			wantCategory: "servicos",
			wantKeyword:  "barbearia",
			wantFound:    true,
		},
		{
			name:        "no match",
			description: "pix transf 9921 jose",
			wantFound:   false,
		},
		{
			name:        "empty description",
			description: "",
			wantFound:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, found := tax.FindByKeyword(tt.description)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantCategory, match.CategoryID)
				assert.Equal(t, tt.wantKeyword, match.Keyword)
			}
		})
	}
}

func TestFindByKeywordFirstMatchWins(t *testing.T) {
	// "mercado livre" contains both "mercado" (alimentacao) and
	// "mercado livre" (compras). The category declared first must win,
	// regardless of which keyword is the better fit.
	tax := Default()

	match, found := tax.FindByKeyword("MERCADO LIVRE COMPRA 221")
	require.True(t, found)
	assert.Equal(t, "alimentacao", match.CategoryID)
	assert.Equal(t, "mercado", match.Keyword)
}

func TestFindByKeywordRespectsEntryOrder(t *testing.T) {
	first, err := New([]Entry{
		{CategoryID: "a", Keywords: []string{"padaria"}},
		{CategoryID: "b", Keywords: []string{"padaria do ze"}},
	})
	require.NoError(t, err)

	reversed, err := New([]Entry{
		{CategoryID: "b", Keywords: []string{"padaria do ze"}},
		{CategoryID: "a", Keywords: []string{"padaria"}},
	})
	require.NoError(t, err)

	m1, ok := first.FindByKeyword("padaria do ze filial 2")
	require.True(t, ok)
	assert.Equal(t, "a", m1.CategoryID)

	m2, ok := reversed.FindByKeyword("padaria do ze filial 2")
	require.True(t, ok)
	assert.Equal(t, "b", m2.CategoryID)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr bool
	}{
		{
			name:    "empty taxonomy",
			entries: nil,
			wantErr: true,
		},
		{
			name: "empty category id",
			entries: []Entry{
				{CategoryID: "  ", Keywords: []string{"x"}},
			},
			wantErr: true,
		},
		{
			name: "duplicate category",
			entries: []Entry{
				{CategoryID: "a", Keywords: []string{"x"}},
				{CategoryID: "a", Keywords: []string{"y"}},
			},
			wantErr: true,
		},
		{
			name: "valid",
			entries: []Entry{
				{CategoryID: "a", Keywords: []string{"x"}},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewNormalizesKeywords(t *testing.T) {
	tax, err := New([]Entry{
		{CategoryID: "a", Keywords: []string{"PaDaRiA", "", "   ", "café"}},
	})
	require.NoError(t, err)

	match, found := tax.FindByKeyword("PADARIA SANTA CLARA")
	require.True(t, found)
	assert.Equal(t, "padaria", match.Keyword)

	_, found = tax.FindByKeyword("Café da manhã")
	assert.True(t, found)
}

func TestNewKeepsKeywordWhitespace(t *testing.T) {
	// A space-suffixed keyword only matches the standalone word.
	tax, err := New([]Entry{
		{CategoryID: "a", Keywords: []string{"bar "}},
		{CategoryID: "b", Keywords: []string{"barbearia"}},
	})
	require.NoError(t, err)

	match, found := tax.FindByKeyword("bar do ze")
	require.True(t, found)
	assert.Equal(t, "a", match.CategoryID)
	assert.Equal(t, "bar ", match.Keyword)

	match, found = tax.FindByKeyword("barbearia do ze")
	require.True(t, found)
	assert.Equal(t, "b", match.CategoryID)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	content := `categories:
  - id: pets
    keywords: [petshop, racao, veterinario]
  - id: alimentacao
    keywords: [ifood]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	tax, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"pets", "alimentacao"}, tax.CategoryIDs())

	match, found := tax.FindByKeyword("PETSHOP AUQMIA")
	require.True(t, found)
	assert.Equal(t, "pets", match.CategoryID)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: {not a list"), 0600))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestDefaultTaxonomyIsValid(t *testing.T) {
	assert.NotPanics(t, func() {
		tax := Default()
		assert.True(t, tax.HasCategory("alimentacao"))
		assert.False(t, tax.HasCategory("outros"))
	})
}
