// Package download fetches lyric files from URLs into a local temp
// directory, pacing requests so remote servers are not hammered.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"github.com/songtools/lyricshare/pkg/logger"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Downloader retrieves lyric files. Local paths are copied instead of
// fetched, so batch inputs can mix URLs and files freely. A download that
// exceeds the timeout fails closed: the caller sees a missing file.
type Downloader struct {
	dir    string
	client *http.Client
	log    *logger.Logger
}

// New creates a Downloader saving into dir, creating it if necessary.
func New(dir string, timeout time.Duration) (*Downloader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating download dir: %w", err)
	}
	return &Downloader{
		dir:    dir,
		client: &http.Client{Timeout: timeout},
		log:    logger.GetLogger(),
	}, nil
}

// Dir returns the directory downloads are saved into.
func (d *Downloader) Dir() string { return d.dir }

// Fetch retrieves the lyric source for songID and returns the local file
// path. src may be a URL or an existing local file path.
func (d *Downloader) Fetch(ctx context.Context, src, songID string) (string, error) {
	if info, err := os.Stat(src); err == nil && info.Mode().IsRegular() {
		return d.copyLocal(src, songID)
	}
	return d.fetchURL(ctx, src, songID)
}

func (d *Downloader) copyLocal(src, songID string) (string, error) {
	ext := filepath.Ext(src)
	if ext == "" {
		ext = ".txt"
	}
	target := filepath.Join(d.dir, songID+ext)

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening local lyric file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", fmt.Errorf("copying %s: %w", src, err)
	}

	d.log.Infof("copied local file %s -> %s", src, target)
	return target, nil
}

func (d *Downloader) fetchURL(ctx context.Context, rawURL, songID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response for %s: %w", rawURL, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		// Lyric hosting pages wrap the text in markup; reduce to text
		// before handing it to the parsers.
		text, err := extractHTMLText(body)
		if err != nil {
			return "", fmt.Errorf("extracting lyric text from %s: %w", rawURL, err)
		}
		body = []byte(text)
	}

	target := filepath.Join(d.dir, songID+inferExtension(rawURL, contentType))
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return "", fmt.Errorf("saving %s: %w", target, err)
	}

	d.log.Infof("downloaded %s (%s) -> %s", rawURL, humanize.Bytes(uint64(len(body))), target)
	return target, nil
}

// extractHTMLText pulls the visible text out of an HTML lyric page,
// preferring a <pre> block when one exists.
func extractHTMLText(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()

	if pre := doc.Find("pre").First(); pre.Length() > 0 {
		return strings.TrimSpace(pre.Text()), nil
	}
	return strings.TrimSpace(doc.Find("body").Text()), nil
}

// inferExtension picks a file extension from the URL path, falling back to
// the response content type.
func inferExtension(rawURL, contentType string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if ext := filepath.Ext(u.Path); ext != "" {
			return ext
		}
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "lrc"):
		return ".lrc"
	case strings.Contains(ct, "krc"):
		return ".krc"
	default:
		return ".txt"
	}
}

// Cleanup removes every file in the download directory.
func (d *Downloader) Cleanup() error {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return fmt.Errorf("reading download dir: %w", err)
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			if err := os.Remove(filepath.Join(d.dir, entry.Name())); err != nil {
				return fmt.Errorf("removing %s: %w", entry.Name(), err)
			}
		}
	}
	d.log.Infof("cleaned up download dir %s", d.dir)
	return nil
}
