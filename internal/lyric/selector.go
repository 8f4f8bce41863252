package lyric

import "sort"

// FallbackQuote is returned when a song yields no lyric lines at all. It
// still reads as a usable share card.
const FallbackQuote = "继续努力，下次会更好！"

type scoredCandidate struct {
	text  string
	score float64
}

// SelectQuote picks the single most quotable line of a song.
//
// Empty input returns FallbackQuote. When no line passes the shareability
// filter, the middle line of the time-sorted sequence is returned so the
// result is still deterministic and song-specific. Otherwise the
// highest-scoring shareable line wins, with ties resolved to the earliest
// occurrence. SelectQuote never fails.
func (s *Scorer) SelectQuote(lines []Line) string {
	if len(lines) == 0 {
		return FallbackQuote
	}

	var candidates []scoredCandidate
	for _, line := range lines {
		if s.IsShareable(line.Text) {
			candidates = append(candidates, scoredCandidate{
				text:  line.Text,
				score: s.ClassicScore(line.Text),
			})
		}
	}

	if len(candidates) == 0 {
		return lines[len(lines)/2].Text
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	return candidates[0].text
}
