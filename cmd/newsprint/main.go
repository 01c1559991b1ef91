package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/gemini"
	"github.com/fwojciec/newsprint/goquery"
	"github.com/fwojciec/newsprint/htmltomarkdown"
	"github.com/fwojciec/newsprint/pipeline"
	"github.com/fwojciec/newsprint/redis"
	nslog "github.com/fwojciec/newsprint/slog"
	"github.com/fwojciec/newsprint/sqlite"
	"github.com/fwojciec/newsprint/yaml"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Redis URL for the snapshot cache. Empty disables the cache.
	RedisURL string

	// Fetcher replaces the network transport when set.
	Fetcher newsprint.Fetcher

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Redis snapshot cache, when configured.
	Cache *redis.SnapshotCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		RedisURL: os.Getenv("NEWSPRINT_REDIS_URL"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Cache != nil {
		_ = m.Cache.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsprint"),
		kong.Description("Download, parse and analyze news articles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsprint --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := yaml.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", newsprint.ErrorMessage(err))
		return err
	}
	deps.Config = cfg

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps.Formatter = goquery.NewFormatter()
	deps.Converter = htmltomarkdown.NewConverter()

	if cmd == "snapshot" || cmd == "show" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set NEWSPRINT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Snapshots = nslog.NewLoggingSnapshotService(sqlite.NewSnapshotService(m.DB), logger)

		if m.RedisURL != "" {
			m.Cache, err = redis.Open(m.RedisURL)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: NEWSPRINT_REDIS_URL must be a redis:// URL")
				return err
			}
			deps.Cache = m.Cache
		}
	}

	if cmd == "show" {
		return kongCtx.Run(deps)
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(cfg, cli.Browser)
		if err != nil {
			return err
		}
		defer fetcher.Close()
	}

	p := NewProcessor(fetcher, cli.Reducer, logger)
	if cli.Summarizer == "gemini" {
		summarizer, err := newGeminiSummarizer(ctx, stderr)
		if err != nil {
			return err
		}
		p.Summarizer = summarizer
	}
	deps.Processor = p

	var opts []pipeline.DownloadOption
	concurrency := pipeline.DefaultConcurrency
	if cmd == "build" {
		opts, err = cli.Build.downloadOptions()
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", newsprint.ErrorMessage(err))
			return err
		}
		concurrency = cli.Build.Concurrency
	}
	deps.Batch = &pipeline.Batch{
		Processor:   p,
		Config:      cfg,
		Limiter:     pipeline.NewDomainLimiter(cli.Rate),
		Concurrency: concurrency,
		Options:     opts,
	}

	return kongCtx.Run(deps)
}

func newGeminiSummarizer(ctx context.Context, stderr io.Writer) (*gemini.Summarizer, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	counter, err := gemini.NewTokenCounter(gemini.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}
	return gemini.NewSummarizer(client, counter), nil
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSPRINT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsprint.db"
	}
	dir := filepath.Join(home, ".newsprint")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsprint.db")
}
