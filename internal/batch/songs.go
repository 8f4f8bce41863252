// Package batch drives multi-song share-quote generation and CSV
// reporting.
package batch

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/songtools/lyricshare/internal/lyric"
	"github.com/songtools/lyricshare/pkg/logger"
)

// Song is one batch input item.
type Song struct {
	Path   string
	ID     string
	Name   string
	Format lyric.Format
}

var lyricExtensions = map[string]bool{
	".txt": true,
	".lrc": true,
	".krc": true,
}

// ParseSongsList reads a song list file. Each line is
// "path,id,name[,format]"; blank lines and #-comments are skipped, and
// malformed lines are logged and dropped rather than failing the batch.
func ParseSongsList(path string) ([]Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening song list: %w", err)
	}
	defer f.Close()

	log := logger.GetLogger()
	var songs []Song

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			log.Warnf("song list line %d malformed: %s", lineNum, line)
			continue
		}

		song := Song{
			Path: strings.TrimSpace(parts[0]),
			ID:   strings.TrimSpace(parts[1]),
			Name: strings.TrimSpace(parts[2]),
		}
		if len(parts) >= 4 && strings.TrimSpace(parts[3]) != "" {
			format, err := lyric.ParseFormat(parts[3])
			if err != nil {
				log.Warnf("song list line %d: %v, skipping item", lineNum, err)
				continue
			}
			song.Format = format
		} else {
			song.Format = lyric.DetectFormat(song.Path)
		}
		songs = append(songs, song)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading song list: %w", err)
	}

	return songs, nil
}

// ScanDirectory walks dir and returns every lyric file found, with
// generated sequential ids and names derived from the file names.
func ScanDirectory(dir string) ([]Song, error) {
	var songs []Song

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !lyricExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		base := filepath.Base(path)
		songs = append(songs, Song{
			Path:   path,
			ID:     fmt.Sprintf("song_%03d", len(songs)+1),
			Name:   strings.TrimSuffix(base, filepath.Ext(base)),
			Format: lyric.DetectFormat(path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	return songs, nil
}
