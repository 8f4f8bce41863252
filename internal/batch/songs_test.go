package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/songtools/lyricshare/internal/lyric"
)

func writeListFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestParseSongsList(t *testing.T) {
	content := `# batch input
songs/a.lrc,song_001,晴天

songs/b.krc,song_002,海阔天空,krc
malformed line
songs/c.txt,song_003,红豆,custom
`
	path := writeListFile(t, "songs.txt", content)

	songs, err := ParseSongsList(path)
	if err != nil {
		t.Fatalf("ParseSongsList: %v", err)
	}
	if len(songs) != 3 {
		t.Fatalf("got %d songs, want 3", len(songs))
	}

	if songs[0].ID != "song_001" || songs[0].Format != lyric.FormatLRC {
		t.Errorf("song 0: got %+v", songs[0])
	}
	if songs[1].Name != "海阔天空" || songs[1].Format != lyric.FormatKRC {
		t.Errorf("song 1: got %+v", songs[1])
	}
	if songs[2].Format != lyric.FormatCustom {
		t.Errorf("song 2 format: got %q", songs[2].Format)
	}
}

func TestParseSongsListBadFormatSkipsItem(t *testing.T) {
	path := writeListFile(t, "songs.txt", "songs/a.lrc,song_001,晴天,qrc\nsongs/b.lrc,song_002,稻香\n")

	songs, err := ParseSongsList(path)
	if err != nil {
		t.Fatalf("ParseSongsList: %v", err)
	}
	if len(songs) != 1 || songs[0].ID != "song_002" {
		t.Fatalf("got %+v, want only song_002", songs)
	}
}

func TestParseSongsListMissingFile(t *testing.T) {
	if _, err := ParseSongsList(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing list file")
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"晴天.lrc":     "[00:12.50]朋友一生一起走\n",
		"notes.md":   "not a lyric file\n",
		"sub/红豆.txt": "[12.5]月亮代表我的心\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	songs, err := ScanDirectory(dir)
	if err != nil {
		t.Fatalf("ScanDirectory: %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("got %d songs, want 2", len(songs))
	}
	for i, song := range songs {
		wantID := []string{"song_001", "song_002"}[i]
		if song.ID != wantID {
			t.Errorf("song %d id: got %q, want %q", i, song.ID, wantID)
		}
		if song.Name == "" || filepath.Ext(song.Name) != "" {
			t.Errorf("song %d name should drop extension: got %q", i, song.Name)
		}
	}
}
