package fuzzy

import (
	"sort"
	"sync"

	"github.com/rafaelvbatista/grana/internal/model"
)

// Match pairs a learned rule with its raw match score (0 = perfect).
type Match struct {
	Rule  model.CategorizationRule
	Score float64
}

// Index supports approximate matching of a description against the
// keyword field of the current rule set. It holds a derived, rebuildable
// view: the rule store stays the only authority.
type Index struct {
	cfg   Config
	mu    sync.RWMutex
	rules []model.CategorizationRule
}

// NewIndex creates an empty index with the given matching parameters.
func NewIndex(cfg Config) *Index {
	return &Index{cfg: cfg}
}

// Rebuild atomically replaces the index contents. Callers must invoke it
// after every rule store mutation; searches issued before the swap see
// the previous complete view, never a partial one.
func (ix *Index) Rebuild(rules []model.CategorizationRule) {
	snapshot := make([]model.CategorizationRule, len(rules))
	copy(snapshot, rules)

	ix.mu.Lock()
	ix.rules = snapshot
	ix.mu.Unlock()
}

// Len returns the number of indexed rules.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.rules)
}

// Search matches the description against every indexed rule keyword and
// returns matches within the threshold, best score first. A limit <= 0
// means no limit. Ties keep rule insertion order.
func (ix *Index) Search(description string, limit int) []Match {
	ix.mu.RLock()
	rules := ix.rules
	ix.mu.RUnlock()

	var matches []Match
	for _, rule := range rules {
		ok, score := Score(rule.Keyword, description, ix.cfg)
		if !ok || score > ix.cfg.Threshold {
			continue
		}
		matches = append(matches, Match{Rule: rule, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
