// Package taxonomy provides the static category-keyword associations used
// for exact matching. The taxonomy is immutable for the process lifetime.
package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry associates one category with its ordered keyword list.
type Entry struct {
	CategoryID string   `yaml:"id"`
	Keywords   []string `yaml:"keywords"`
}

// Match is a successful exact lookup.
type Match struct {
	CategoryID string
	Keyword    string
}

// Taxonomy is an ordered category-keyword table. Order matters: lookup
// returns the first keyword containment hit, so reordering entries
// changes classification outcomes.
type Taxonomy struct {
	entries []Entry
}

// New builds a taxonomy from the given entries, normalizing keywords to
// lower case. Whitespace inside a keyword is significant: "bar " matches
// "bar do ze" but not "barbearia", so trimming would change match
// semantics. Entry order is preserved.
func New(entries []Entry) (*Taxonomy, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("taxonomy cannot be empty")
	}

	normalized := make([]Entry, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.CategoryID) == "" {
			return nil, fmt.Errorf("taxonomy entry with empty category id")
		}
		if seen[e.CategoryID] {
			return nil, fmt.Errorf("duplicate taxonomy category %q", e.CategoryID)
		}
		seen[e.CategoryID] = true

		keywords := make([]string, 0, len(e.Keywords))
		for _, kw := range e.Keywords {
			if strings.TrimSpace(kw) == "" {
				continue
			}
			keywords = append(keywords, strings.ToLower(kw))
		}
		normalized = append(normalized, Entry{CategoryID: e.CategoryID, Keywords: keywords})
	}

	return &Taxonomy{entries: normalized}, nil
}

// Default returns the built-in Brazilian-Portuguese taxonomy.
func Default() *Taxonomy {
	t, err := New(DefaultEntries())
	if err != nil {
		// The built-in table is validated by tests; this cannot happen at runtime.
		panic(fmt.Sprintf("invalid built-in taxonomy: %v", err))
	}
	return t
}

// taxonomyFile is the YAML shape of an external taxonomy override.
type taxonomyFile struct {
	Categories []Entry `yaml:"categories"`
}

// LoadFile reads a taxonomy override from a YAML file. The file's entry
// order becomes the lookup order.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var file taxonomyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	return New(file.Categories)
}

// FindByKeyword returns the first taxonomy keyword contained in the
// description, scanning categories and keywords in declaration order.
// Containment is case-insensitive.
func (t *Taxonomy) FindByKeyword(description string) (Match, bool) {
	lowered := strings.ToLower(description)

	for _, entry := range t.entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(lowered, kw) {
				return Match{CategoryID: entry.CategoryID, Keyword: kw}, true
			}
		}
	}

	return Match{}, false
}

// CategoryIDs returns the category identifiers in declaration order.
func (t *Taxonomy) CategoryIDs() []string {
	ids := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		ids = append(ids, e.CategoryID)
	}
	return ids
}

// HasCategory reports whether the taxonomy declares the given category.
func (t *Taxonomy) HasCategory(categoryID string) bool {
	for _, e := range t.entries {
		if e.CategoryID == categoryID {
			return true
		}
	}
	return false
}
