package model

import (
	"strings"
	"time"
)

// RuleInitialConfidence is the confidence assigned to a rule on creation.
const RuleInitialConfidence = 0.7

// RuleConfidenceStep is how much a repeated correction raises confidence.
const RuleConfidenceStep = 0.1

// CategorizationRule is a keyword-to-category association learned from a
// user correction. Rules are owned by the rule store; the fuzzy index only
// holds a rebuildable view of them.
type CategorizationRule struct {
	LastUsed   time.Time `json:"last_used"`
	Keyword    string    `json:"keyword"` // Always stored lower-cased
	CategoryID string    `json:"category_id"`
	Confidence float64   `json:"confidence"`
	UsageCount int       `json:"usage_count"`
}

// NewCategorizationRule creates a rule for a fresh correction.
func NewCategorizationRule(keyword, categoryID string) CategorizationRule {
	return CategorizationRule{
		Keyword:    strings.ToLower(keyword),
		CategoryID: categoryID,
		Confidence: RuleInitialConfidence,
		UsageCount: 1,
		LastUsed:   time.Now(),
	}
}

// Reinforce records a repeated identical correction: usage count grows
// without bound, confidence saturates at 1.
func (r *CategorizationRule) Reinforce() {
	r.UsageCount++
	r.Confidence = min(1, r.Confidence+RuleConfidenceStep)
	r.LastUsed = time.Now()
}

// Matches reports whether the rule covers the given (keyword, category)
// pair. Keyword comparison is case-insensitive, category is exact.
func (r *CategorizationRule) Matches(keyword, categoryID string) bool {
	return strings.EqualFold(r.Keyword, keyword) && r.CategoryID == categoryID
}
