// Package service orchestrates parsing, quote selection and optional
// persistence for single songs.
package service

import (
	"fmt"

	"github.com/songtools/lyricshare/internal/lyric"
	"github.com/songtools/lyricshare/internal/storage"
	"github.com/songtools/lyricshare/pkg/logger"
)

// QuoteService turns one lyric file into one shareable quote.
type QuoteService struct {
	scorer *lyric.Scorer
	store  *storage.Store
	log    *logger.Logger
}

// New creates a QuoteService. store may be nil; results are then not
// persisted.
func New(store *storage.Store) *QuoteService {
	return &QuoteService{
		scorer: lyric.NewScorer(nil),
		store:  store,
		log:    logger.GetLogger(),
	}
}

// Scorer exposes the underlying scorer for analysis tooling.
func (s *QuoteService) Scorer() *lyric.Scorer { return s.scorer }

// ProcessLyricFile parses path with the given format and returns the best
// share quote for the song. Parse failures are recovered locally: the song
// still yields the fallback quote, and the error is surfaced so batch
// drivers can record a per-item status.
func (s *QuoteService) ProcessLyricFile(path, songID, songName string, format lyric.Format) (string, error) {
	s.log.Infof("processing %s (%s, format=%s)", path, songName, format)

	lines, err := lyric.ParseFile(path, format)
	if err != nil {
		s.log.Warnf("parse failed for %s: %v", path, err)
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(lines) == 0 {
		s.log.Warnf("no lyric lines found in %s", path)
	}

	quote := s.scorer.SelectQuote(lines)
	s.log.Infof("selected quote for %s: %s", songName, quote)

	if s.store != nil {
		score := s.scorer.ClassicScore(quote)
		if _, err := s.store.Save(songID, songName, quote, score, "success"); err != nil {
			// Persistence is best-effort; the quote is still usable.
			s.log.Warnf("storing summary for %s failed: %v", songID, err)
		}
	}

	return quote, nil
}

// ProcessShareQuote handles the split-pair chorus files and returns the
// single best share quote.
func (s *QuoteService) ProcessShareQuote(path string) (string, error) {
	lines, err := lyric.ParseFile(path, lyric.FormatSplitPair)
	if err != nil {
		s.log.Warnf("parse failed for %s: %v", path, err)
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return s.scorer.SelectQuote(lines), nil
}

// ProcessChorusFile extracts the chorus candidate lines of a split-pair
// file as plain text.
func (s *QuoteService) ProcessChorusFile(path string) ([]string, error) {
	lines, err := lyric.ParseFile(path, lyric.FormatSplitPair)
	if err != nil {
		s.log.Warnf("parse failed for %s: %v", path, err)
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	chorus := s.scorer.ExtractChorus(lines)
	texts := make([]string, 0, len(chorus))
	for _, line := range chorus {
		texts = append(texts, line.Text)
	}
	s.log.Infof("extracted %d chorus lines from %s", len(texts), path)
	return texts, nil
}
