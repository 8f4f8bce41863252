// Package lyric implements timed-lyric parsing and the classic-quote
// selection heuristic shared by the summary and chorus tools.
package lyric

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Line is a single timed lyric line. Time is in seconds from the start of
// the song; Text is trimmed of surrounding whitespace.
type Line struct {
	Time float64
	Text string
}

func (l Line) String() string {
	return fmt.Sprintf("[%.2f] %s", l.Time, l.Text)
}

// Format identifies how a lyric file encodes its timestamps.
type Format string

const (
	// FormatLRC is the standard [mm:ss.cc]text format.
	FormatLRC Format = "lrc"
	// FormatKRC is the compact [startMs,endMs]text format.
	FormatKRC Format = "krc"
	// FormatCustom accepts [timestamp]text or "timestamp text" lines.
	FormatCustom Format = "custom"
	// FormatSplitPair is the two-lines-per-entry variant where every
	// lyric line is followed by a duration metadata line.
	FormatSplitPair Format = "splitpair"
)

// ErrUnsupportedFormat is returned when a format tag has no parser.
var ErrUnsupportedFormat = errors.New("unsupported lyric format")

// DetectFormat maps a file path to a lyric format by extension.
// Unknown extensions fall back to FormatCustom.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lrc":
		return FormatLRC
	case ".krc":
		return FormatKRC
	default:
		return FormatCustom
	}
}

// ParseFormat converts a format tag (as found in song list files) to a
// Format. The empty string means "detect from the file extension".
func ParseFormat(tag string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(tag))) {
	case FormatLRC:
		return FormatLRC, nil
	case FormatKRC:
		return FormatKRC, nil
	case FormatCustom:
		return FormatCustom, nil
	case FormatSplitPair:
		return FormatSplitPair, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
	}
}
