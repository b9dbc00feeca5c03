package model

// MatchMethod indicates how a categorization result was produced.
type MatchMethod string

// Match method constants.
const (
	// MethodExact is a literal substring hit against the static taxonomy,
	// and also tags the default fallback.
	MethodExact MatchMethod = "exact"
	// MethodFuzzy is an approximate match against a learned rule.
	MethodFuzzy MatchMethod = "fuzzy"
	// MethodLearned is reserved for exact learned-rule hits. The current
	// classification paths never produce it; every rule-derived hit is
	// tagged MethodFuzzy.
	MethodLearned MatchMethod = "learned"
)

// Fallback result constants.
const (
	// ExactMatchConfidence is the fixed confidence of a taxonomy hit.
	ExactMatchConfidence = 0.9
	// FallbackConfidence is the fixed confidence of the default bucket.
	FallbackConfidence = 0.1
)

// CategorizationResult is the outcome of classifying one description.
// Transient: produced fresh per call, never persisted.
type CategorizationResult struct {
	CategoryID      string      `json:"category_id"`
	Method          MatchMethod `json:"method"`
	MatchedKeywords []string    `json:"matched_keywords"`
	Confidence      float64     `json:"confidence"`
}

// FallbackResult returns the universal default: the catch-all bucket at
// low confidence, tagged as an exact match.
func FallbackResult() CategorizationResult {
	return CategorizationResult{
		CategoryID:      DefaultCategory,
		Confidence:      FallbackConfidence,
		MatchedKeywords: []string{},
		Method:          MethodExact,
	}
}

// ClassifiedTransaction pairs a transaction with its categorization
// result, as returned by batch classification.
type ClassifiedTransaction struct {
	Transaction Transaction          `json:"transaction"`
	Result      CategorizationResult `json:"result"`
}
