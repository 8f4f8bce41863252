package lyric

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// wordTokens matches Unicode word runs, so a spaced or punctuated line
// splits into its natural tokens while an unbroken CJK sentence stays one.
var wordTokens = regexp.MustCompile(`[\p{L}\p{N}_]+`)

const cjkPunctuation = "，。！？"

func isCJKIdeograph(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// cjkOnly strips every rune that is not a CJK ideograph, leaving the
// length-relevant core of a lyric line.
func cjkOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isCJKIdeograph(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cjkLen(s string) int {
	n := 0
	for _, r := range s {
		if isCJKIdeograph(r) {
			n++
		}
	}
	return n
}

// isPureRepetition reports whether text is essentially one or two runes
// repeated, or contains a run of 3+ identical consecutive runes.
// RE2 has no backreferences, so the consecutive-run check is a rune scan.
func isPureRepetition(text string) bool {
	distinct := make(map[rune]struct{})
	for _, r := range text {
		distinct[r] = struct{}{}
	}
	if len(distinct) <= 2 && utf8.RuneCountInString(text) > 4 {
		return true
	}

	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// hasBeautifulStructure reports whether a line reads as a complete,
// well-formed phrase: a 4- or 8-character parallel structure, sentence
// punctuation, or a first token echoed by the last.
func hasBeautifulStructure(text string) bool {
	n := utf8.RuneCountInString(text)
	if n == 4 || n == 8 {
		return true
	}
	if strings.ContainsAny(text, cjkPunctuation) {
		return true
	}
	words := wordTokens.FindAllString(text, -1)
	return len(words) >= 2 && words[0] == words[len(words)-1]
}

func containsAnyWord(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
