package lyric

import (
	"strings"
)

// Scorer ranks lyric lines by how quotable they are. It is stateless apart
// from its lexicon reference, so a single Scorer is safe to share.
type Scorer struct {
	lex *Lexicon
}

// NewScorer creates a Scorer over the given lexicon. A nil lexicon means
// the default tables.
func NewScorer(lex *Lexicon) *Scorer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Scorer{lex: lex}
}

// IsShareable reports whether a lyric line is suitable as a short share
// excerpt: no filler interjections, a 4-20 ideograph core, and not a pure
// repetition.
func (s *Scorer) IsShareable(text string) bool {
	for _, avoid := range s.lex.AvoidWords {
		if strings.Contains(text, avoid) {
			return false
		}
	}

	if n := cjkLen(text); n < 4 || n > 20 {
		return false
	}

	return !isPureRepetition(text)
}

// ClassicScore estimates how "classic" a lyric line is. The score is
// additive: a base of 1.0, +0.5 per category keyword present, gated
// bonuses for structure and depth, and a length-sweetness bonus. Category
// keywords and depth lexicons overlap, so a strong line compounds both
// passes; that double counting matches the established rubric and is kept.
func (s *Scorer) ClassicScore(text string) float64 {
	score := 1.0

	for _, category := range s.lex.Categories() {
		for _, keyword := range category {
			if strings.Contains(text, keyword) {
				score += 0.5
			}
		}
	}

	if hasBeautifulStructure(text) {
		score += 1.0
	}
	if containsAnyWord(text, s.lex.EmotionDepth) {
		score += 1.0
	}
	if containsAnyWord(text, s.lex.Imagery) {
		score += 0.8
	}
	if containsAnyWord(text, s.lex.Philosophical) {
		score += 1.2
	}

	switch n := cjkLen(text); {
	case n >= 6 && n <= 12:
		score += 0.5
	case n >= 4 && n <= 16:
		score += 0.3
	}

	return score
}
