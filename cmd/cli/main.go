package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/mdobak/go-xerrors"

	"github.com/songtools/lyricshare/internal/audio"
	"github.com/songtools/lyricshare/internal/batch"
	"github.com/songtools/lyricshare/internal/config"
	"github.com/songtools/lyricshare/internal/download"
	"github.com/songtools/lyricshare/internal/lyric"
	"github.com/songtools/lyricshare/internal/service"
	"github.com/songtools/lyricshare/internal/storage"
	"github.com/songtools/lyricshare/pkg/logger"
)

var cfg *config.Config

func main() {
	cfg = config.Load()
	log := logger.GetLogger()

	printBanner()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	log.Infof("executing command: %s", command)

	switch command {
	case "summary":
		handleSummary()
	case "chorus":
		handleChorus()
	case "score":
		handleScore()
	case "batch":
		handleBatch()
	case "urls":
		handleURLs()
	case "probe":
		handleProbe()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printBanner() {
	banner := `
 _               _         ____  _
| | _   _ _ __(_) ___   / ___|| |__   __ _ _ __ ___
| || | | | '__| |/ __|  \___ \| '_ \ / _` + "`" + ` | '__/ _ \
| || |_| | |  | | (__    ___) | | | | (_| | | |  __/
|_| \__, |_|  |_|\___|  |____/|_| |_|\__,_|_|  \___|
    |___/
          Lyric Share-Quote Selection Tool
`
	fmt.Println(banner)
}

func printUsage() {
	fmt.Println(`Usage: lyricshare <command> [options]

Commands:
  summary  <lyric_file>           Pick the best share quote from one lyric file
  chorus   <splitpair_file>       Extract chorus candidate lines
  score    <text>                 Score a single lyric line
  batch    [options]              Process a song list or directory into a CSV report
  urls     [options]              Download lyric URLs and write summaries
  probe    <audio_file>           Inspect an audio file header
  help                            Show this help

Run 'lyricshare <command> -h' for command options.`)
}

// buildService opens the optional summary store when a db path is set.
// The returned close func is safe to call when no store was opened.
func buildService(dbPath string) (*service.QuoteService, func(), error) {
	if dbPath == "" {
		return service.New(nil), func() {}, nil
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store at %s: %w", dbPath, err)
	}
	closeFn := func() {
		if err := store.Close(); err != nil {
			logger.Warnf("closing store: %v", err)
		}
	}
	return service.New(store), closeFn, nil
}

func fail(err error) {
	err = xerrors.New(err)
	fmt.Printf("❌ %v\n", err)
	logger.Fatalf("%v", err)
}

func handleSummary() {
	cmd := flag.NewFlagSet("summary", flag.ExitOnError)
	format := cmd.String("format", "", "Lyric format: lrc, krc, custom or splitpair (default: detect from extension)")
	id := cmd.String("id", "", "Song id used for persistence")
	name := cmd.String("name", "", "Song name (default: file name)")
	dbPath := cmd.String("db", cfg.DBPath, "SQLite path for storing summaries (empty disables persistence)")
	cmd.Parse(os.Args[2:])

	if cmd.NArg() < 1 {
		fmt.Println("Usage: lyricshare summary <lyric_file> [options]")
		os.Exit(1)
	}
	path := cmd.Arg(0)

	lyricFormat := lyric.DetectFormat(path)
	if *format != "" {
		var err error
		lyricFormat, err = lyric.ParseFormat(*format)
		if err != nil {
			fail(err)
		}
	}

	songName := *name
	if songName == "" {
		base := filepath.Base(path)
		songName = strings.TrimSuffix(base, filepath.Ext(base))
	}
	songID := *id
	if songID == "" {
		songID = songName
	}

	svc, closeStore, err := buildService(*dbPath)
	if err != nil {
		fail(err)
	}
	defer closeStore()

	quote, err := svc.ProcessLyricFile(path, songID, songName, lyricFormat)
	if err != nil {
		fail(err)
	}

	fmt.Printf("✅ %s\n", quote)
}

func handleChorus() {
	cmd := flag.NewFlagSet("chorus", flag.ExitOnError)
	shareQuote := cmd.Bool("share-quote", false, "Print the single best share quote instead of all chorus lines")
	output := cmd.String("output", "", "Write the result to this file instead of stdout")
	cmd.Parse(os.Args[2:])

	if cmd.NArg() < 1 {
		fmt.Println("Usage: lyricshare chorus <splitpair_file> [options]")
		os.Exit(1)
	}
	path := cmd.Arg(0)

	svc := service.New(nil)

	var out string
	if *shareQuote {
		quote, err := svc.ProcessShareQuote(path)
		if err != nil {
			fail(err)
		}
		out = quote + "\n"
	} else {
		texts, err := svc.ProcessChorusFile(path)
		if err != nil {
			fail(err)
		}
		out = strings.Join(texts, "\n") + "\n"
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
			fail(err)
		}
		fmt.Printf("✅ written to %s\n", *output)
		return
	}
	fmt.Print(out)
}

func handleScore() {
	cmd := flag.NewFlagSet("score", flag.ExitOnError)
	cmd.Parse(os.Args[2:])

	if cmd.NArg() < 1 {
		fmt.Println("Usage: lyricshare score <text>")
		os.Exit(1)
	}
	text := strings.Join(cmd.Args(), " ")

	scorer := lyric.NewScorer(nil)
	fmt.Printf("text:      %s\n", text)
	fmt.Printf("shareable: %v\n", scorer.IsShareable(text))
	fmt.Printf("score:     %.2f\n", scorer.ClassicScore(text))
}

func handleBatch() {
	cmd := flag.NewFlagSet("batch", flag.ExitOnError)
	input := cmd.String("input", "", "Song list file (path,id,name[,format] per line)")
	dir := cmd.String("dir", "", "Directory of lyric files (alternative to -input)")
	output := cmd.String("output", "share_quotes.csv", "Output CSV path")
	dbPath := cmd.String("db", cfg.DBPath, "SQLite path for storing summaries (empty disables persistence)")
	cmd.Parse(os.Args[2:])

	if (*input == "") == (*dir == "") {
		fmt.Println("Usage: lyricshare batch -input <list_file> | -dir <lyrics_dir> [options]")
		os.Exit(1)
	}

	var songs []batch.Song
	var err error
	if *input != "" {
		songs, err = batch.ParseSongsList(*input)
	} else {
		songs, err = batch.ScanDirectory(*dir)
	}
	if err != nil {
		fail(err)
	}
	if len(songs) == 0 {
		fmt.Println("No songs found.")
		return
	}

	svc, closeStore, err := buildService(*dbPath)
	if err != nil {
		fail(err)
	}
	defer closeStore()

	runner := batch.NewRunner(svc)
	results, err := runner.Run(songs, *output)
	if err != nil {
		fail(err)
	}

	success := 0
	for _, res := range results {
		if res.Status == batch.StatusSuccess {
			success++
		}
	}
	fmt.Printf("✅ %d/%d songs processed -> %s\n", success, len(results), *output)
}

func handleURLs() {
	cmd := flag.NewFlagSet("urls", flag.ExitOnError)
	input := cmd.String("input", "", "URL list file (id and url per line)")
	output := cmd.String("output", "summaries.csv", "Output CSV path")
	downloadDir := cmd.String("download-dir", cfg.DownloadDir, "Directory for downloaded lyric files")
	delayMs := cmd.Int("delay", cfg.DelayMs, "Delay between downloads in milliseconds")
	timeout := cmd.Int("timeout", cfg.TimeoutSeconds, "Per-download timeout in seconds")
	cleanup := cmd.Bool("cleanup", cfg.CleanupTemp, "Remove downloaded files when the run ends")
	cmd.Parse(os.Args[2:])

	if *input == "" {
		fmt.Println("Usage: lyricshare urls -input <url_file> [options]")
		os.Exit(1)
	}

	items, err := batch.ParseURLList(*input)
	if err != nil {
		fail(err)
	}
	if len(items) == 0 {
		fmt.Println("No urls found.")
		return
	}

	dl, err := download.New(*downloadDir, time.Duration(*timeout)*time.Second)
	if err != nil {
		fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := batch.NewURLRunner(service.New(nil), dl, time.Duration(*delayMs)*time.Millisecond, *cleanup)
	if err := runner.Run(ctx, items, *output); err != nil {
		fail(err)
	}

	fmt.Printf("✅ summaries written to %s\n", *output)
}

func handleProbe() {
	cmd := flag.NewFlagSet("probe", flag.ExitOnError)
	cmd.Parse(os.Args[2:])

	if cmd.NArg() < 1 {
		fmt.Println("Usage: lyricshare probe <audio_file>")
		os.Exit(1)
	}
	path := cmd.Arg(0)

	proc := audio.NewProcessor(nil)
	info, err := proc.Probe(path)
	if err != nil {
		fail(err)
	}

	fmt.Printf("sample rate: %d Hz\n", info.SampleRate)
	fmt.Printf("channels:    %d\n", info.NumChannels)
	fmt.Printf("bit depth:   %d\n", info.BitDepth)
}
