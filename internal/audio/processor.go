// Package audio is the audio-processing panel behind the GUI shells.
// Only metadata probing is real; the processing operations are stubs
// pending a DSP backend.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/songtools/lyricshare/pkg/logger"
)

var (
	// ErrNotImplemented marks operations the panel exposes but does not
	// yet perform.
	ErrNotImplemented = errors.New("audio processing not implemented")
	// ErrFormatNotSupported is returned for formats outside the panel's
	// configured set.
	ErrFormatNotSupported = errors.New("audio format not supported")
	// ErrFileCorrupted is returned when a file fails to decode.
	ErrFileCorrupted = errors.New("audio file corrupted")
)

// Info is the probed metadata of an audio file.
type Info struct {
	SampleRate  int
	NumChannels int
	BitDepth    int
}

// Processor is the stub audio panel.
type Processor struct {
	supportedFormats []string
	log              *logger.Logger
}

// NewProcessor creates a panel supporting the given formats (defaults to
// mp3/wav/flac/aac when empty).
func NewProcessor(formats []string) *Processor {
	if len(formats) == 0 {
		formats = []string{"mp3", "wav", "flac", "aac"}
	}
	return &Processor{
		supportedFormats: formats,
		log:              logger.GetLogger(),
	}
}

// Supports reports whether the panel accepts files with the given
// extension or format name.
func (p *Processor) Supports(format string) bool {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	for _, f := range p.supportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Probe reads the metadata of a WAV file without decoding its samples.
func (p *Processor) Probe(path string) (*Info, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !p.Supports(ext) {
		return nil, fmt.Errorf("%w: %q", ErrFormatNotSupported, ext)
	}
	if ext != "wav" {
		return nil, fmt.Errorf("%w: probing %s", ErrNotImplemented, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrFileCorrupted, path)
	}

	info := &Info{
		SampleRate:  int(dec.SampleRate),
		NumChannels: int(dec.NumChans),
		BitDepth:    int(dec.BitDepth),
	}
	p.log.Debugf("probed %s: %d Hz, %d ch, %d bit", path, info.SampleRate, info.NumChannels, info.BitDepth)
	return info, nil
}

// ConvertFormat is a stub. It validates its arguments and reports
// ErrNotImplemented.
func (p *Processor) ConvertFormat(inputPath, targetFormat string) (string, error) {
	if !p.Supports(targetFormat) {
		return "", fmt.Errorf("%w: %q", ErrFormatNotSupported, targetFormat)
	}
	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("checking %s: %w", inputPath, err)
	}
	return "", ErrNotImplemented
}

// ApplyEffect is a stub pending a DSP backend.
func (p *Processor) ApplyEffect(inputPath, effect string) (string, error) {
	return "", ErrNotImplemented
}

// SeparateTracks is a stub pending a DSP backend.
func (p *Processor) SeparateTracks(inputPath string) ([]string, error) {
	return nil, ErrNotImplemented
}
