package lyric

// ExtractChorus returns the lines most likely to belong to the chorus:
// lines that repeat verbatim (ignoring non-ideograph characters), lines
// carrying chorus-grade emotion words, and the later half of the song where
// choruses usually live. The union is deduplicated by ideograph content,
// keeping the first occurrence, and returned in time order.
func (s *Scorer) ExtractChorus(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}

	candidates := s.findRepetitive(lines)
	candidates = append(candidates, s.findEmotional(lines)...)
	candidates = append(candidates, laterHalf(lines)...)

	unique := dedupeByIdeographs(candidates)
	sortByTime(unique)
	return unique
}

func (s *Scorer) findRepetitive(lines []Line) []Line {
	counts := make(map[string]int)
	for _, line := range lines {
		if clean := cjkOnly(line.Text); clean != "" {
			counts[clean]++
		}
	}

	var repetitive []Line
	for _, line := range lines {
		clean := cjkOnly(line.Text)
		if clean != "" && counts[clean] > 1 {
			repetitive = append(repetitive, line)
		}
	}
	return repetitive
}

func (s *Scorer) findEmotional(lines []Line) []Line {
	var emotional []Line
	for _, line := range lines {
		if containsAnyWord(line.Text, s.lex.ChorusEmotion) {
			emotional = append(emotional, line)
		}
	}
	return emotional
}

// laterHalf returns the second half of the song; very short songs are
// returned whole.
func laterHalf(lines []Line) []Line {
	if len(lines) < 4 {
		return lines
	}
	return lines[len(lines)/2:]
}

func dedupeByIdeographs(lines []Line) []Line {
	seen := make(map[string]struct{})
	var unique []Line
	for _, line := range lines {
		clean := cjkOnly(line.Text)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, line)
	}
	return unique
}
