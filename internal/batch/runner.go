package batch

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/songtools/lyricshare/internal/lyric"
	"github.com/songtools/lyricshare/internal/service"
	"github.com/songtools/lyricshare/pkg/logger"
)

// Statuses recorded per batch item.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusError   = "error"
)

// Result is one processed batch item.
type Result struct {
	ID         string
	SongName   string
	ShareQuote string
	Status     string
}

// Runner processes song batches into share quotes.
type Runner struct {
	svc *service.QuoteService
	log *logger.Logger
}

// NewRunner creates a batch runner over the given quote service.
func NewRunner(svc *service.QuoteService) *Runner {
	return &Runner{svc: svc, log: logger.GetLogger()}
}

// Run processes every song and writes a CSV report to outputPath. A
// missing or unreadable song is recorded as an error row; the batch never
// aborts on a single item.
func (r *Runner) Run(songs []Song, outputPath string) ([]Result, error) {
	results := make([]Result, 0, len(songs))

	for _, song := range songs {
		r.log.Infof("processing %s", song.Path)

		if _, err := os.Stat(song.Path); err != nil {
			r.log.Warnf("file missing: %s", song.Path)
			results = append(results, Result{
				ID:         song.ID,
				SongName:   song.Name,
				ShareQuote: "文件不存在",
				Status:     StatusError,
			})
			continue
		}

		quote, err := r.svc.ProcessLyricFile(song.Path, song.ID, song.Name, song.Format)
		switch {
		case err != nil:
			results = append(results, Result{
				ID:         song.ID,
				SongName:   song.Name,
				ShareQuote: fmt.Sprintf("处理失败: %v", err),
				Status:     StatusError,
			})
		case quote == lyric.FallbackQuote:
			// No lyric lines parsed; the item keeps its usable fallback
			// quote but is flagged so operators can re-source the file.
			results = append(results, Result{
				ID:         song.ID,
				SongName:   song.Name,
				ShareQuote: quote,
				Status:     StatusFailed,
			})
		default:
			results = append(results, Result{
				ID:         song.ID,
				SongName:   song.Name,
				ShareQuote: quote,
				Status:     StatusSuccess,
			})
		}
	}

	if err := writeResultsCSV(results, outputPath); err != nil {
		return results, err
	}

	success, failed, errored := 0, 0, 0
	for _, res := range results {
		switch res.Status {
		case StatusSuccess:
			success++
		case StatusFailed:
			failed++
		default:
			errored++
		}
	}
	r.log.Infof("batch finished: %d success, %d failed, %d error -> %s",
		success, failed, errored, outputPath)

	return results, nil
}

func writeResultsCSV(results []Result, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"id", "song_name", "share_quote", "status"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, res := range results {
		if err := w.Write([]string{res.ID, res.SongName, res.ShareQuote, res.Status}); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", res.ID, err)
		}
	}
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
