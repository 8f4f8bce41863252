package lyric

import "testing"

func TestExtractChorus(t *testing.T) {
	s := NewScorer(nil)

	lines := []Line{
		{Time: 10, Text: "第一句平凡的歌词"},
		{Time: 20, Text: "你是我的爱"},   // emotion keyword
		{Time: 30, Text: "路边的野菊盛开"}, // later half only
		{Time: 40, Text: "第一句平凡的歌词"}, // repeat of the opener
	}

	got := s.ExtractChorus(lines)

	want := []Line{
		{Time: 10, Text: "第一句平凡的歌词"},
		{Time: 20, Text: "你是我的爱"},
		{Time: 30, Text: "路边的野菊盛开"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d chorus lines, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("chorus line %d: want %v, got %v", i, w, got[i])
		}
	}
}

func TestExtractChorusShortSong(t *testing.T) {
	s := NewScorer(nil)

	// Fewer than four lines: the whole song is a chorus candidate.
	lines := []Line{
		{Time: 1, Text: "短歌的第一句"},
		{Time: 2, Text: "短歌的第二句"},
	}
	got := s.ExtractChorus(lines)
	if len(got) != 2 {
		t.Fatalf("expected both lines of a short song, got %v", got)
	}
}

func TestExtractChorusEmpty(t *testing.T) {
	s := NewScorer(nil)
	if got := s.ExtractChorus(nil); got != nil {
		t.Errorf("ExtractChorus(nil) = %v, want nil", got)
	}
}
