package lyric

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIsShareable(t *testing.T) {
	s := NewScorer(nil)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"classic line", "朋友一生一起走", true},
		{"filler interjection", "啊啊啊", false},
		{"repeated laughter", "哈哈哈哈哈", false},
		{"too short", "你好", false},
		{"too long", "这一句歌词实在是太长太长太长太长根本不适合分享出去了", false},
		{"mixed script keeps ideograph core", "Hello朋友一生一起走yeah", true},
		{"latin only has no ideograph core", "Yeah yeah yeah", false},
		{"two distinct runes repeated", "对错对错对", false},
		{"consecutive run of three", "我们爱爱爱着你", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IsShareable(tc.text); got != tc.want {
				t.Errorf("IsShareable(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestIsShareableIsPure(t *testing.T) {
	s := NewScorer(nil)
	for i := 0; i < 3; i++ {
		if !s.IsShareable("朋友一生一起走") {
			t.Fatal("IsShareable changed its answer between calls")
		}
	}
}

func TestClassicScore(t *testing.T) {
	s := NewScorer(nil)

	tests := []struct {
		text string
		want float64
	}{
		// base 1.0 + 一生 category 0.5 + philosophical depth 1.2 + length(7) 0.5
		{"朋友一生一起走", 3.2},
		// base 1.0 + 心/月亮 categories 1.0 + emotion 1.0 + imagery 0.8 + length(7) 0.5
		{"月亮代表我的心", 4.3},
		// base 1.0 + 永远/爱/永远(time) 1.5 + punctuation 1.0 + emotion 1.0
		// + philosophical 1.2 + length(4) 0.3
		{"爱，是永远", 6.0},
		// base 1.0 + length(7) 0.5 only
		{"轻轻地告诉自己", 1.5},
	}

	for _, tc := range tests {
		if got := s.ClassicScore(tc.text); !almostEqual(got, tc.want) {
			t.Errorf("ClassicScore(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestClassicScoreStructureBonus(t *testing.T) {
	s := NewScorer(nil)

	// Exactly four characters: structure bonus plus the 4-16 length band.
	// base 1.0 + structure 1.0 + length(4) 0.3
	if got := s.ClassicScore("春夏秋冬"); !almostEqual(got, 2.3) {
		t.Errorf("ClassicScore(四字) = %v, want 2.3", got)
	}

	// First and last token echo each other.
	// base 1.0 + structure 1.0 + length(8) 0.5
	if got := s.ClassicScore("再见 我的城市 再见"); !almostEqual(got, 2.5) {
		t.Errorf("ClassicScore(首尾呼应) = %v, want 2.5", got)
	}
}

func TestClassicScoreKeywordMonotonic(t *testing.T) {
	s := NewScorer(nil)

	// Same length band and structure; the second text adds lexicon words.
	plain := s.ClassicScore("轻轻地告诉自己")
	keyed := s.ClassicScore("轻轻告诉自己心")
	if keyed <= plain {
		t.Errorf("adding keyword did not raise score: %v <= %v", keyed, plain)
	}
	if !almostEqual(keyed, 3.0) {
		t.Errorf("ClassicScore(轻轻告诉自己心) = %v, want 3.0", keyed)
	}

	shorter := s.ClassicScore("我们的故事")
	richer := s.ClassicScore("我们的爱情故事")
	if richer <= shorter {
		t.Errorf("adding 爱情 did not raise score: %v <= %v", richer, shorter)
	}
}

func TestClassicScoreDeterministic(t *testing.T) {
	s := NewScorer(nil)
	first := s.ClassicScore("月亮代表我的心")
	for i := 0; i < 5; i++ {
		if got := s.ClassicScore("月亮代表我的心"); got != first {
			t.Fatalf("score changed between calls: %v vs %v", got, first)
		}
	}
}
