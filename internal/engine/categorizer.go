// Package engine implements the transaction categorization engine: exact
// taxonomy matching, approximate matching against learned rules, and the
// learning loop fed by user corrections.
package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/rafaelvbatista/grana/internal/fuzzy"
	"github.com/rafaelvbatista/grana/internal/model"
	"github.com/rafaelvbatista/grana/internal/storage"
	"github.com/rafaelvbatista/grana/internal/taxonomy"
)

const (
	// minDescriptionLength is the shortest trimmed description worth
	// classifying, in runes.
	minDescriptionLength = 2
	// fuzzyAcceptThreshold is the derived confidence a fuzzy hit must
	// exceed (strictly) to be returned.
	fuzzyAcceptThreshold = 0.4
	// fuzzySimilarityFloor bounds how little raw similarity can
	// contribute to the derived confidence.
	fuzzySimilarityFloor = 0.3
	// defaultSuggestionLimit caps SuggestCategories when the caller
	// passes no limit.
	defaultSuggestionLimit = 3
)

// Categorizer classifies transaction descriptions and learns from user
// corrections. It owns the fuzzy index and keeps it rebuilt after every
// rule mutation; the rule store stays the single authority on rules.
//
// Classify and Learn never fail: storage problems degrade to an empty
// rule set and are reported through the Observer.
type Categorizer struct {
	taxonomy *taxonomy.Taxonomy
	rules    *storage.RuleStore
	index    *fuzzy.Index
	observer Observer

	mu     sync.Mutex
	cache  []model.CategorizationRule
	loaded bool
}

// Option configures a Categorizer.
type Option func(*Categorizer)

// WithObserver routes absorbed failures to the given observer instead of
// the default slog-backed one.
func WithObserver(obs Observer) Option {
	return func(c *Categorizer) {
		c.observer = obs
	}
}

// WithFuzzyConfig overrides the fuzzy matching parameters.
func WithFuzzyConfig(cfg fuzzy.Config) Option {
	return func(c *Categorizer) {
		c.index = fuzzy.NewIndex(cfg)
	}
}

// New creates a categorizer over the given taxonomy and rule store.
func New(tax *taxonomy.Taxonomy, rules *storage.RuleStore, opts ...Option) *Categorizer {
	c := &Categorizer{
		taxonomy: tax,
		rules:    rules,
		index:    fuzzy.NewIndex(fuzzy.DefaultConfig()),
		observer: &LogObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify assigns a category to a free-text description.
//
// Resolution order: exact taxonomy containment first (never overridden),
// then the best fuzzy hit against learned rules when its derived
// confidence clears the acceptance threshold, then the default bucket.
func (c *Categorizer) Classify(ctx context.Context, description string) model.CategorizationResult {
	trimmed := strings.TrimSpace(description)
	if len([]rune(trimmed)) < minDescriptionLength {
		return model.FallbackResult()
	}

	c.ensureLoaded(ctx)

	if match, ok := c.taxonomy.FindByKeyword(trimmed); ok {
		return model.CategorizationResult{
			CategoryID:      match.CategoryID,
			Confidence:      model.ExactMatchConfidence,
			MatchedKeywords: []string{match.Keyword},
			Method:          model.MethodExact,
		}
	}

	if hits := c.index.Search(trimmed, 1); len(hits) > 0 {
		best := hits[0]
		confidence := derivedConfidence(best)
		if confidence > fuzzyAcceptThreshold {
			return model.CategorizationResult{
				CategoryID:      best.Rule.CategoryID,
				Confidence:      confidence,
				MatchedKeywords: []string{best.Rule.Keyword},
				Method:          model.MethodFuzzy,
			}
		}
	}

	return model.FallbackResult()
}

// Learn records a user correction. Every distinct token surviving
// tokenization becomes (or reinforces) a rule for the corrected
// category, plus one rule for the full lower-cased description. A word
// repeated within one correction counts once; one user action must not
// reinforce a rule twice. Each mutation is persisted immediately and
// the fuzzy index rebuilt, so the next Classify sees it.
func (c *Categorizer) Learn(ctx context.Context, description, categoryID string) {
	description = strings.TrimSpace(description)
	if description == "" || strings.TrimSpace(categoryID) == "" {
		return
	}

	c.ensureLoaded(ctx)

	keywords := Tokenize(description)
	keywords = append(keywords, strings.ToLower(description))
	keywords = dedupe(keywords)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, keyword := range keywords {
		rules, err := c.rules.AddOrUpdate(ctx, c.cache, keyword, categoryID)
		if err != nil {
			// Keep serving the mutated set from memory; the write is lost
			// but classification must stay available.
			c.observer.StorageError("save rules", err)
		}
		c.cache = rules
		c.index.Rebuild(rules)
	}
}

// SuggestCategories returns the primary classification followed by up to
// limit-1 further distinct categories from the top fuzzy matches, in
// fuzzy-rank order.
func (c *Categorizer) SuggestCategories(ctx context.Context, description string, limit int) []string {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	suggestions := []string{c.Classify(ctx, description).CategoryID}
	if len(suggestions) >= limit {
		return suggestions[:limit]
	}

	for _, hit := range c.index.Search(strings.TrimSpace(description), 0) {
		if containsString(suggestions, hit.Rule.CategoryID) {
			continue
		}
		suggestions = append(suggestions, hit.Rule.CategoryID)
		if len(suggestions) >= limit {
			break
		}
	}

	return suggestions
}

// ClassifyAll classifies every transaction independently. A failure on
// one element falls back to the default bucket and never aborts the
// rest; batch import must not fail wholesale over one bad description.
func (c *Categorizer) ClassifyAll(ctx context.Context, txns []model.Transaction) []model.ClassifiedTransaction {
	results := make([]model.ClassifiedTransaction, 0, len(txns))
	for _, txn := range txns {
		results = append(results, model.ClassifiedTransaction{
			Transaction: txn,
			Result:      c.classifyOne(ctx, txn.Description),
		})
	}
	return results
}

// classifyOne shields the batch from a panic in a single classification.
func (c *Categorizer) classifyOne(ctx context.Context, description string) (result model.CategorizationResult) {
	defer func() {
		if r := recover(); r != nil {
			c.observer.ClassificationPanic(description, r)
			result = model.FallbackResult()
		}
	}()
	return c.Classify(ctx, description)
}

// ensureLoaded lazily loads rules and builds the index on first use.
// Load failures degrade to an empty rule set.
func (c *Categorizer) ensureLoaded(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return
	}

	rules, err := c.rules.Load(ctx)
	if err != nil {
		c.observer.StorageError("load rules", err)
		rules = []model.CategorizationRule{}
	}

	c.cache = rules
	c.index.Rebuild(rules)
	c.loaded = true
}

// derivedConfidence converts a raw fuzzy score (0 = perfect) into a
// confidence: similarity floored at fuzzySimilarityFloor, scaled by how
// much the learned rule itself is trusted.
func derivedConfidence(hit fuzzy.Match) float64 {
	similarity := 1 - hit.Score
	if similarity < fuzzySimilarityFloor {
		similarity = fuzzySimilarityFloor
	}
	return similarity * hit.Rule.Confidence
}

// dedupe drops repeated keywords, keeping first-occurrence order.
func dedupe(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := keywords[:0]
	for _, kw := range keywords {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
