package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rafaelvbatista/grana/internal/common"
	"github.com/rafaelvbatista/grana/internal/model"
)

// RuleStore owns the learned categorization rules. Rules live as one
// JSON array under a fixed key and are fully overwritten on every save.
type RuleStore struct {
	kv KV
}

// NewRuleStore creates a rule store over the given KV backend.
func NewRuleStore(kv KV) *RuleStore {
	return &RuleStore{kv: kv}
}

// Load returns the persisted rules. An absent record yields an empty
// slice and no error; a record that exists but fails to decode yields an
// empty slice and an error wrapping common.ErrMalformedRecord, so
// callers can tell "no data yet" from corruption.
func (s *RuleStore) Load(ctx context.Context) ([]model.CategorizationRule, error) {
	raw, found, err := s.kv.Get(ctx, KeyRules)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	if !found {
		return []model.CategorizationRule{}, nil
	}

	var rules []model.CategorizationRule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return []model.CategorizationRule{}, fmt.Errorf("%w: rules: %v", common.ErrMalformedRecord, err)
	}

	for i, rule := range rules {
		if err := validateRule(&rule); err != nil {
			return []model.CategorizationRule{}, fmt.Errorf("%w: rule at index %d: %v", common.ErrMalformedRecord, i, err)
		}
	}

	return rules, nil
}

// Save serializes and persists the full rule collection.
func (s *RuleStore) Save(ctx context.Context, rules []model.CategorizationRule) error {
	data, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}
	if err := s.kv.Set(ctx, KeyRules, string(data)); err != nil {
		return fmt.Errorf("failed to save rules: %w", err)
	}
	return nil
}

// AddOrUpdate reinforces the rule for the (keyword, categoryID) pair if
// one exists, or appends a fresh rule otherwise, then persists the whole
// collection. The mutated rule set is applied to the given slice and
// returned; on persistence failure the mutated set is still returned so
// the caller can keep serving it in memory.
func (s *RuleStore) AddOrUpdate(ctx context.Context, rules []model.CategorizationRule, keyword, categoryID string) ([]model.CategorizationRule, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return rules, fmt.Errorf("%w: keyword", ErrEmptyString)
	}
	if err := validateString(categoryID, "categoryID"); err != nil {
		return rules, err
	}

	updated := false
	for i := range rules {
		if rules[i].Matches(keyword, categoryID) {
			rules[i].Reinforce()
			updated = true
			break
		}
	}
	if !updated {
		rules = append(rules, model.NewCategorizationRule(keyword, categoryID))
	}

	if err := s.Save(ctx, rules); err != nil {
		return rules, err
	}
	return rules, nil
}

// validateRule rejects structurally invalid persisted rules.
func validateRule(rule *model.CategorizationRule) error {
	if strings.TrimSpace(rule.Keyword) == "" {
		return fmt.Errorf("empty keyword")
	}
	if strings.TrimSpace(rule.CategoryID) == "" {
		return fmt.Errorf("empty category id")
	}
	if rule.Confidence < 0 || rule.Confidence > 1 {
		return fmt.Errorf("confidence %v out of range", rule.Confidence)
	}
	if rule.UsageCount < 1 {
		return fmt.Errorf("usage count %d below 1", rule.UsageCount)
	}
	return nil
}
