package batch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/songtools/lyricshare/internal/download"
	"github.com/songtools/lyricshare/internal/service"
)

func TestParseURLList(t *testing.T) {
	content := "# url input\nsong_001\thttp://example.com/a.lrc\nsong_002 http://example.com/b.lrc\n\nonly_one_field\n"
	path := writeListFile(t, "urls.txt", content)

	items, err := ParseURLList(path)
	if err != nil {
		t.Fatalf("ParseURLList: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].SongID != "song_001" || items[0].URL != "http://example.com/a.lrc" {
		t.Errorf("item 0: got %+v", items[0])
	}
	if items[1].SongID != "song_002" {
		t.Errorf("item 1: got %+v", items[1])
	}
}

func TestURLRunnerRun(t *testing.T) {
	lyrics := map[string]string{
		"/good.lrc": "[00:12.50]朋友一生一起走\n[00:15.25]月亮代表我的心\n",
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := lyrics[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(body))
	}))
	defer server.Close()

	downloadDir := t.TempDir()
	dl, err := download.New(downloadDir, 5*time.Second)
	if err != nil {
		t.Fatalf("download.New: %v", err)
	}

	items := []URLItem{
		{SongID: "song_001", URL: server.URL + "/good.lrc"},
		{SongID: "song_002", URL: server.URL + "/missing.lrc"},
	}

	outputPath := filepath.Join(t.TempDir(), "summaries.csv")
	runner := NewURLRunner(service.New(nil), dl, 0, true)

	if err := runner.Run(context.Background(), items, outputPath); err != nil {
		t.Fatalf("Run: %v", err)
	}

	rows := readCSV(t, outputPath)
	if len(rows) != 2 {
		t.Fatalf("got %d csv rows, want 2 (header plus one success)", len(rows))
	}
	if rows[0][0] != "id" || rows[0][1] != "summary" {
		t.Errorf("header: got %v", rows[0])
	}
	if rows[1][0] != "song_001" || rows[1][1] != "月亮代表我的心" {
		t.Errorf("row 1: got %v", rows[1])
	}

	entries, err := os.ReadDir(downloadDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			t.Errorf("cleanup left file %s behind", entry.Name())
		}
	}
}

func TestURLRunnerRunCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[00:12.50]朋友一生一起走\n"))
	}))
	defer server.Close()

	dl, err := download.New(t.TempDir(), 5*time.Second)
	if err != nil {
		t.Fatalf("download.New: %v", err)
	}

	items := []URLItem{
		{SongID: "song_001", URL: server.URL + "/a.lrc"},
		{SongID: "song_002", URL: server.URL + "/b.lrc"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outputPath := filepath.Join(t.TempDir(), "summaries.csv")
	runner := NewURLRunner(service.New(nil), dl, time.Second, false)

	if err := runner.Run(ctx, items, outputPath); err == nil {
		t.Fatal("expected context error")
	}
}
