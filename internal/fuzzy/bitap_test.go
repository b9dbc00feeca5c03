package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		text      string
		pattern   string
		wantMatch bool
	}{
		{
			name:      "identical strings",
			text:      "padaria do ze",
			pattern:   "padaria do ze",
			wantMatch: true,
		},
		{
			name:      "case insensitive",
			text:      "PADARIA DO ZE",
			pattern:   "padaria do ze",
			wantMatch: true,
		},
		{
			name:      "one typo",
			text:      "padaria",
			pattern:   "padarai",
			wantMatch: true,
		},
		{
			name:      "pattern inside longer text",
			text:      "supermercado pague menos",
			pattern:   "pague menos",
			wantMatch: true,
		},
		{
			name:      "unrelated strings",
			text:      "uber",
			pattern:   "farmacia",
			wantMatch: false,
		},
		{
			name:      "pattern below minimum length",
			text:      "padaria",
			pattern:   "p",
			wantMatch: false,
		},
		{
			name:      "empty text",
			text:      "",
			pattern:   "padaria",
			wantMatch: false,
		},
		{
			name:      "accented keyword",
			text:      "açougue são jorge",
			pattern:   "açougue são jorge",
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, score := Score(tt.text, tt.pattern, cfg)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.LessOrEqual(t, score, cfg.Threshold)
			}
		})
	}
}

func TestScorePerfectMatchIsNotZero(t *testing.T) {
	// An identical pair reports a near-zero score, never exactly zero,
	// so derived confidence stays below the fixed exact-match level.
	ok, score := Score("ifood", "ifood", DefaultConfig())
	assert.True(t, ok)
	assert.Equal(t, 0.001, score)
}

func TestScoreOrdersByCloseness(t *testing.T) {
	cfg := DefaultConfig()

	_, exact := Score("padaria", "padaria", cfg)
	okTypo, typo := Score("padaria", "padarix", cfg)

	assert.True(t, okTypo)
	assert.Less(t, exact, typo)
}

func TestScoreSingleError(t *testing.T) {
	// Two-rune pattern against a text sharing one rune: one error out
	// of two pattern positions scores exactly 0.5.
	ok, score := Score("ax", "ab", DefaultConfig())
	assert.True(t, ok)
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestComputeScoreLocationHandling(t *testing.T) {
	base := Config{Threshold: 0.6, Distance: 100, MinMatchLength: 2}

	// With the location penalty enabled, distance from the expected
	// location raises the score.
	withLocation := computeScore(base, 0, 50, 10)
	assert.InDelta(t, 0.5, withLocation, 1e-9)

	ignoring := base
	ignoring.IgnoreLocation = true
	assert.InDelta(t, 0.0, computeScore(ignoring, 0, 50, 10), 1e-9)
}
