package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCategorizationRule(t *testing.T) {
	rule := NewCategorizationRule("PaDaRiA", "alimentacao")

	assert.Equal(t, "padaria", rule.Keyword)
	assert.Equal(t, "alimentacao", rule.CategoryID)
	assert.Equal(t, RuleInitialConfidence, rule.Confidence)
	assert.Equal(t, 1, rule.UsageCount)
	assert.False(t, rule.LastUsed.IsZero())
}

func TestReinforceSaturatesConfidence(t *testing.T) {
	rule := NewCategorizationRule("padaria", "alimentacao")

	previous := rule.Confidence
	for i := 0; i < 10; i++ {
		rule.Reinforce()
		assert.GreaterOrEqual(t, rule.Confidence, previous)
		assert.LessOrEqual(t, rule.Confidence, 1.0)
		previous = rule.Confidence
	}

	assert.Equal(t, 11, rule.UsageCount)
	assert.InDelta(t, 1.0, rule.Confidence, 1e-9)
}

func TestRuleMatches(t *testing.T) {
	rule := NewCategorizationRule("padaria", "alimentacao")

	assert.True(t, rule.Matches("padaria", "alimentacao"))
	assert.True(t, rule.Matches("PADARIA", "alimentacao"))
	assert.False(t, rule.Matches("padaria", "transporte"))
	assert.False(t, rule.Matches("farmacia", "alimentacao"))
}

func TestFallbackResult(t *testing.T) {
	result := FallbackResult()

	assert.Equal(t, DefaultCategory, result.CategoryID)
	assert.Equal(t, FallbackConfidence, result.Confidence)
	assert.Empty(t, result.MatchedKeywords)
	assert.NotNil(t, result.MatchedKeywords)
	assert.Equal(t, MethodExact, result.Method)
}
