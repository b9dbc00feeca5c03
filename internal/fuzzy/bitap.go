// Package fuzzy implements approximate string matching over learned
// categorization rules using the bitap algorithm. Scores range from 0
// (perfect match) to 1 (no similarity); matches above the configured
// threshold are discarded.
package fuzzy

import "strings"

// maxPatternChunk is the widest pattern a single bitap pass supports
// (one bit per pattern position in a 32-bit word). Longer search text
// is split into chunks and the chunk scores averaged.
const maxPatternChunk = 32

// Config holds the matching parameters. Changing them changes which
// learned rules are reachable, so they are fixed in DefaultConfig and
// only overridden in tests.
type Config struct {
	// Threshold is the maximum score still considered a match.
	// Lower is stricter.
	Threshold float64
	// Distance determines how far from ExpectedLocation a match may be
	// before the location penalty saturates. Irrelevant when
	// IgnoreLocation is set.
	Distance int
	// ExpectedLocation anchors the location penalty.
	ExpectedLocation int
	// MinMatchLength is the shortest pattern worth matching, in runes.
	MinMatchLength int
	// IgnoreLocation disables the location penalty entirely: a match
	// anywhere in the text scores the same.
	IgnoreLocation bool
}

// DefaultConfig returns the matching parameters the engine ships with.
func DefaultConfig() Config {
	return Config{
		Threshold:        0.6,
		Distance:         100,
		ExpectedLocation: 0,
		MinMatchLength:   2,
		IgnoreLocation:   true,
	}
}

// computeScore converts an error count and match location into a score.
func computeScore(cfg Config, errors, currentLocation, patternLen int) float64 {
	accuracy := float64(errors) / float64(patternLen)
	if cfg.IgnoreLocation {
		return accuracy
	}

	proximity := currentLocation - cfg.ExpectedLocation
	if proximity < 0 {
		proximity = -proximity
	}
	if cfg.Distance == 0 {
		if proximity != 0 {
			return 1
		}
		return accuracy
	}
	return accuracy + float64(proximity)/float64(cfg.Distance)
}

// patternAlphabet builds the per-rune bitmask table for one pattern chunk.
func patternAlphabet(pattern []rune) map[rune]uint32 {
	mask := make(map[rune]uint32, len(pattern))
	for i, r := range pattern {
		mask[r] |= 1 << uint(len(pattern)-i-1)
	}
	return mask
}

// bitapSearch runs one bitap pass of pattern (at most maxPatternChunk
// runes) over text. Both inputs must already be lower-cased.
func bitapSearch(text, pattern []rune, alphabet map[rune]uint32, cfg Config) (bool, float64) {
	patternLen := len(pattern)
	textLen := len(text)
	if patternLen == 0 || textLen == 0 {
		return false, 1
	}

	currentThreshold := cfg.Threshold
	bestLocation := indexOfRunes(text, pattern, cfg.ExpectedLocation)

	// An exact occurrence caps the threshold before the error passes run.
	if bestLocation >= 0 {
		score := computeScore(cfg, 0, bestLocation, patternLen)
		if score < currentThreshold {
			currentThreshold = score
		}
	}

	finalScore := 1.0
	mask := uint32(1) << uint(patternLen-1)
	binMax := patternLen + textLen
	var lastBits []uint32

	for i := 0; i < patternLen; i++ {
		// Binary search for the widest window still inside the threshold
		// at this error count.
		binMin := 0
		binMid := binMax
		for binMin < binMid {
			if computeScore(cfg, i, cfg.ExpectedLocation+binMid, patternLen) <= currentThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := maxInt(1, cfg.ExpectedLocation-binMid+1)
		finish := minInt(cfg.ExpectedLocation+binMid, textLen) + patternLen
		if finish > textLen+patternLen {
			finish = textLen + patternLen
		}

		bits := make([]uint32, finish+2)
		bits[finish+1] = (1 << uint(i)) - 1

		for j := finish; j >= start; j-- {
			currentLocation := j - 1
			var charMatch uint32
			if currentLocation < textLen {
				charMatch = alphabet[text[currentLocation]]
			}

			if i == 0 {
				bits[j] = ((bits[j+1] << 1) | 1) & charMatch
			} else {
				bits[j] = ((bits[j+1]<<1)|1)&charMatch |
					(((lastBits[j+1] | lastBits[j]) << 1) | 1) |
					lastBits[j+1]
			}

			if bits[j]&mask != 0 {
				finalScore = computeScore(cfg, i, currentLocation, patternLen)
				if finalScore <= currentThreshold {
					currentThreshold = finalScore
					bestLocation = currentLocation
					if bestLocation <= cfg.ExpectedLocation {
						break
					}
					start = maxInt(1, 2*cfg.ExpectedLocation-bestLocation)
				}
			}
		}

		// One more error would already exceed the threshold: stop early.
		if computeScore(cfg, i+1, cfg.ExpectedLocation, patternLen) > currentThreshold {
			break
		}
		lastBits = bits
	}

	if bestLocation < 0 {
		return false, 1
	}
	// Never report a perfect 0 so downstream confidence math keeps a
	// distinction between fuzzy hits and fixed exact-match confidence.
	if finalScore <= 0 {
		finalScore = 0.001
	}
	return true, finalScore
}

// Score matches pattern against text, chunking patterns wider than one
// bitap word. Returns whether any chunk matched and the averaged score.
func Score(text, pattern string, cfg Config) (bool, float64) {
	textRunes := []rune(strings.ToLower(text))
	patternRunes := []rune(strings.ToLower(pattern))

	if len(patternRunes) < cfg.MinMatchLength || len(textRunes) == 0 {
		return false, 1
	}
	if runesEqual(textRunes, patternRunes) {
		return true, 0.001
	}

	var (
		total   float64
		chunks  int
		matched bool
	)
	for start := 0; start < len(patternRunes); start += maxPatternChunk {
		end := minInt(start+maxPatternChunk, len(patternRunes))
		chunk := patternRunes[start:end]
		ok, score := bitapSearch(textRunes, chunk, patternAlphabet(chunk), cfg)
		if ok {
			matched = true
		}
		total += score
		chunks++
	}

	return matched, total / float64(chunks)
}

func indexOfRunes(text, pattern []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(pattern) <= len(text); i++ {
		if runesEqual(text[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
