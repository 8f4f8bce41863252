package lyric

// Lexicon holds the read-only keyword tables used by the scorer. It is
// constructed once and never mutated afterwards; every Scorer shares a
// reference to it.
type Lexicon struct {
	// The four scoring categories. Categories overlap on purpose: a word
	// like 永远 counts in both the philosophical and time tables.
	Philosophical []string
	Emotional     []string
	Imagery       []string
	TimeWords     []string

	// EmotionDepth gates the emotional-depth bonus. It is almost the
	// Emotional table but without 笑, matching the original rubric.
	EmotionDepth []string

	// AvoidWords are filler/interjection substrings that disqualify a
	// line from sharing.
	AvoidWords []string

	// ChorusEmotion marks lines that belong to the chorus candidate set.
	ChorusEmotion []string
}

// Categories returns the four keyword tables scored at +0.5 per present
// keyword.
func (lx *Lexicon) Categories() [][]string {
	return [][]string{lx.Philosophical, lx.Emotional, lx.Imagery, lx.TimeWords}
}

// DefaultLexicon returns the keyword tables for Chinese pop lyrics.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Philosophical: []string{
			"一生", "永远", "瞬间", "时光", "岁月", "青春", "年华",
			"人生", "命运", "缘分", "爱情", "友情", "亲情",
		},
		Emotional: []string{
			"爱", "情", "心", "泪", "笑", "痛", "伤", "思念", "回忆",
			"孤独", "寂寞", "温暖", "幸福", "快乐", "悲伤",
		},
		Imagery: []string{
			"月亮", "星星", "太阳", "风", "雨", "雪", "云", "天空",
			"大海", "山", "花", "树", "草", "远方", "天涯",
		},
		TimeWords: []string{
			"昨天", "今天", "明天", "永远", "瞬间", "时光", "岁月",
			"青春", "年华", "从前", "以后", "现在",
		},
		EmotionDepth: []string{
			"爱", "情", "心", "泪", "痛", "伤", "思念", "回忆",
			"孤独", "寂寞", "温暖", "幸福", "快乐", "悲伤",
		},
		AvoidWords: []string{
			"啊啊啊", "哦哦哦", "嗯嗯嗯", "啦啦啦", "嘿嘿嘿",
			"哈哈", "呵呵", "嘻嘻", "嘿嘿",
		},
		ChorusEmotion: []string{
			"爱", "情", "心", "泪", "痛", "伤", "思念", "回忆",
			"孤独", "寂寞", "温暖", "幸福", "快乐", "悲伤",
			"永远", "一生", "瞬间", "时光", "岁月", "青春",
		},
	}
}
