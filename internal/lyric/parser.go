package lyric

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	lrcTag       = regexp.MustCompile(`\[(\d{2}):(\d{2})\.(\d{2})\]`)
	krcTag       = regexp.MustCompile(`\[(\d+),(\d+)\]`)
	customTag    = regexp.MustCompile(`\[([\d:.]+)\]`)
	splitPairTag = regexp.MustCompile(`\[(\d{2}):(\d{2})\.(\d{3})\]`)
)

// Parse reads timed lyric lines from r using the given format and returns
// them sorted ascending by time. A read error yields a nil sequence; the
// caller decides the fallback.
func Parse(r io.Reader, format Format) ([]Line, error) {
	switch format {
	case FormatLRC:
		return ParseLRC(r)
	case FormatKRC:
		return ParseKRC(r)
	case FormatCustom:
		return ParseCustom(r)
	case FormatSplitPair:
		return ParseSplitPair(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ParseFile opens path and parses it with the given format.
func ParseFile(path string, format Format) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lyric file: %w", err)
	}
	defer f.Close()
	return Parse(f, format)
}

// ParseLRC parses the standard [mm:ss.cc]text format.
func ParseLRC(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := norm.NFC.String(strings.TrimSpace(scanner.Text()))
		if skipLine(line) {
			continue
		}

		loc := lrcTag.FindStringSubmatchIndex(line)
		if loc == nil {
			continue // metadata tags like [ti:...] carry no timestamp
		}
		minutes, _ := strconv.Atoi(line[loc[2]:loc[3]])
		seconds, _ := strconv.Atoi(line[loc[4]:loc[5]])
		centis, _ := strconv.Atoi(line[loc[6]:loc[7]])
		time := float64(minutes)*60 + float64(seconds) + float64(centis)/100

		text := strings.TrimSpace(line[loc[1]:])
		if text != "" {
			lines = append(lines, Line{Time: time, Text: text})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lrc lyrics: %w", err)
	}

	sortByTime(lines)
	return lines, nil
}

// ParseKRC parses the compact [startMs,endMs]text format. The start of the
// range becomes the line time; every range tag is stripped from the text.
func ParseKRC(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := norm.NFC.String(strings.TrimSpace(scanner.Text()))
		if skipLine(line) {
			continue
		}

		m := krcTag.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		startMs, _ := strconv.Atoi(m[1])
		text := strings.TrimSpace(krcTag.ReplaceAllString(line, ""))
		if text != "" {
			lines = append(lines, Line{Time: float64(startMs) / 1000, Text: text})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading krc lyrics: %w", err)
	}

	sortByTime(lines)
	return lines, nil
}

// ParseCustom parses free-form lines of either "[timestamp]text" or
// "timestamp text", where the timestamp is mm:ss(.xx) or plain seconds.
func ParseCustom(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := norm.NFC.String(strings.TrimSpace(scanner.Text()))
		if skipLine(line) {
			continue
		}

		if loc := customTag.FindStringSubmatchIndex(line); loc != nil {
			time := parseTimeString(line[loc[2]:loc[3]])
			text := strings.TrimSpace(line[loc[1]:])
			if time >= 0 && text != "" {
				lines = append(lines, Line{Time: time, Text: text})
			}
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		if len(parts) == 2 {
			time := parseTimeString(parts[0])
			text := strings.TrimSpace(parts[1])
			if time >= 0 && text != "" {
				lines = append(lines, Line{Time: time, Text: text})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading custom lyrics: %w", err)
	}

	sortByTime(lines)
	return lines, nil
}

// ParseSplitPair parses the two-lines-per-entry variant: odd lines carry
// [mm:ss.mmm]text, even lines carry duration metadata. The metadata lines
// are discarded unconditionally so their content can never leak into the
// lyric text. A dangling final lyric line without its metadata line is
// dropped.
func ParseSplitPair(r io.Reader) ([]Line, error) {
	var raw []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw = append(raw, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading split-pair lyrics: %w", err)
	}

	var lines []Line
	for i := 0; i+1 < len(raw); i += 2 {
		lyricLine := norm.NFC.String(strings.TrimSpace(raw[i]))

		m := splitPairTag.FindStringSubmatch(lyricLine)
		if m == nil {
			continue
		}
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		millis, _ := strconv.Atoi(m[3])
		time := float64(minutes)*60 + float64(seconds) + float64(millis)/1000

		text := strings.TrimSpace(splitPairTag.ReplaceAllString(lyricLine, ""))
		if text != "" {
			lines = append(lines, Line{Time: time, Text: text})
		}
	}

	sortByTime(lines)
	return lines, nil
}

func skipLine(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// parseTimeString converts "mm:ss", "mm:ss.xx" or plain seconds to
// seconds, returning -1 when the string is not a valid timestamp.
func parseTimeString(s string) float64 {
	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		minutes, err := strconv.Atoi(parts[0])
		if err != nil {
			return -1
		}
		seconds, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return -1
		}
		return float64(minutes)*60 + seconds
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return seconds
}

func sortByTime(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Time < lines[j].Time
	})
}
