package batch

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/songtools/lyricshare/internal/download"
	"github.com/songtools/lyricshare/internal/lyric"
	"github.com/songtools/lyricshare/internal/service"
	"github.com/songtools/lyricshare/pkg/logger"
)

// URLItem is one "id url" input line of the URL batch mode.
type URLItem struct {
	SongID string
	URL    string
}

// ParseURLList reads the "id<TAB or space>url" input file. Blank lines
// and #-comments are skipped; malformed lines are logged and dropped.
func ParseURLList(path string) ([]URLItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening url list: %w", err)
	}
	defer f.Close()

	log := logger.GetLogger()
	var items []URLItem

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var parts []string
		if strings.Contains(line, "\t") {
			parts = strings.SplitN(line, "\t", 2)
		} else {
			parts = strings.SplitN(line, " ", 2)
		}
		if len(parts) < 2 {
			log.Warnf("url list line %d malformed: %s", lineNum, line)
			continue
		}
		items = append(items, URLItem{
			SongID: strings.TrimSpace(parts[0]),
			URL:    strings.TrimSpace(parts[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading url list: %w", err)
	}

	log.Infof("parsed %d urls", len(items))
	return items, nil
}

// URLRunner downloads each lyric URL and appends one summary row to the
// output CSV as soon as the item finishes, so partial progress survives
// interruptions.
type URLRunner struct {
	svc        *service.QuoteService
	downloader *download.Downloader
	delay      time.Duration
	cleanup    bool
	log        *logger.Logger
}

// NewURLRunner creates a URL batch runner. delay paces requests between
// items; cleanup removes the download dir contents when the run ends.
func NewURLRunner(svc *service.QuoteService, dl *download.Downloader, delay time.Duration, cleanup bool) *URLRunner {
	return &URLRunner{
		svc:        svc,
		downloader: dl,
		delay:      delay,
		cleanup:    cleanup,
		log:        logger.GetLogger(),
	}
}

// Run processes every URL item. Per-item failures are logged and skipped;
// the run continues.
func (r *URLRunner) Run(ctx context.Context, items []URLItem, outputPath string) error {
	if err := initCSV(outputPath); err != nil {
		return err
	}
	if r.cleanup {
		defer func() {
			if err := r.downloader.Cleanup(); err != nil {
				r.log.Warnf("cleanup failed: %v", err)
			}
		}()
	}

	success := 0
	for i, item := range items {
		r.log.Infof("progress %d/%d: %s", i+1, len(items), item.SongID)

		summary, err := r.processItem(ctx, item)
		if err != nil {
			r.log.Warnf("skipping %s: %v", item.SongID, err)
		} else {
			if err := appendCSVRow(outputPath, item.SongID, summary); err != nil {
				return err
			}
			success++
		}

		if i < len(items)-1 && r.delay > 0 {
			select {
			case <-time.After(r.delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	r.log.Infof("url batch finished: %d/%d succeeded -> %s", success, len(items), outputPath)
	return nil
}

func (r *URLRunner) processItem(ctx context.Context, item URLItem) (string, error) {
	path, err := r.downloader.Fetch(ctx, item.URL, item.SongID)
	if err != nil {
		return "", fmt.Errorf("downloading: %w", err)
	}

	format := lyric.DetectFormat(path)
	// The URL mode carries no song name; the id stands in.
	return r.svc.ProcessLyricFile(path, item.SongID, item.SongID, format)
}

func initCSV(outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("initializing %s: %w", outputPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "summary"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	w.Flush()
	return w.Error()
}

func appendCSVRow(outputPath, songID, summary string) error {
	f, err := os.OpenFile(outputPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", outputPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{songID, summary}); err != nil {
		return fmt.Errorf("appending row for %s: %w", songID, err)
	}
	w.Flush()
	return w.Error()
}
