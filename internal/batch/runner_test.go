package batch

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/songtools/lyricshare/internal/lyric"
	"github.com/songtools/lyricshare/internal/service"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return rows
}

func TestRunnerRun(t *testing.T) {
	dir := t.TempDir()

	goodPath := filepath.Join(dir, "good.lrc")
	goodContent := "[00:12.50]朋友一生一起走\n[00:15.25]月亮代表我的心\n"
	if err := os.WriteFile(goodPath, []byte(goodContent), 0o644); err != nil {
		t.Fatal(err)
	}

	emptyPath := filepath.Join(dir, "empty.lrc")
	if err := os.WriteFile(emptyPath, []byte("# comments only\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	songs := []Song{
		{Path: goodPath, ID: "song_001", Name: "好歌", Format: lyric.FormatLRC},
		{Path: emptyPath, ID: "song_002", Name: "空歌", Format: lyric.FormatLRC},
		{Path: filepath.Join(dir, "missing.lrc"), ID: "song_003", Name: "丢歌", Format: lyric.FormatLRC},
	}

	outputPath := filepath.Join(dir, "report.csv")
	runner := NewRunner(service.New(nil))

	results, err := runner.Run(songs, outputPath)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Status != StatusSuccess {
		t.Errorf("song_001 status: got %q, want %q", results[0].Status, StatusSuccess)
	}
	if results[0].ShareQuote != "月亮代表我的心" {
		t.Errorf("song_001 quote: got %q", results[0].ShareQuote)
	}
	if results[1].Status != StatusFailed {
		t.Errorf("song_002 status: got %q, want %q", results[1].Status, StatusFailed)
	}
	if results[1].ShareQuote != lyric.FallbackQuote {
		t.Errorf("song_002 quote: got %q", results[1].ShareQuote)
	}
	if results[2].Status != StatusError {
		t.Errorf("song_003 status: got %q, want %q", results[2].Status, StatusError)
	}

	rows := readCSV(t, outputPath)
	if len(rows) != 4 {
		t.Fatalf("got %d csv rows, want 4", len(rows))
	}
	wantHeader := []string{"id", "song_name", "share_quote", "status"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header col %d: got %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][0] != "song_001" || rows[1][3] != StatusSuccess {
		t.Errorf("row 1: got %v", rows[1])
	}
	if rows[3][2] != "文件不存在" {
		t.Errorf("row 3 quote: got %q", rows[3][2])
	}
}

func TestRunnerRunEmptyBatch(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.csv")
	runner := NewRunner(service.New(nil))

	results, err := runner.Run(nil, outputPath)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}

	rows := readCSV(t, outputPath)
	if len(rows) != 1 {
		t.Fatalf("empty batch should still write the header, got %d rows", len(rows))
	}
}
