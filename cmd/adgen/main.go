package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/campaign"
	"github.com/fwojciec/adgen/gemini"
	"github.com/fwojciec/adgen/goquery"
	"github.com/fwojciec/adgen/htmltomarkdown"
	adgenhttp "github.com/fwojciec/adgen/http"
	"github.com/fwojciec/adgen/readability"
	"github.com/fwojciec/adgen/rod"
	"github.com/fwojciec/adgen/site"
	adgenslog "github.com/fwojciec/adgen/slog"
	"github.com/fwojciec/adgen/sqlite"
	"github.com/fwojciec/adgen/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// Real environment variables win over .env.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration. Set before calling Run().
	DBPath string
	APIKey string
	Model  string
	Stdin  io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService adgen.RunService
	Generator  adgen.Generator

	closers []io.Closer
}

// NewMain returns a new instance of Main with configuration read from the
// environment.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  defaultModel(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("adgen"),
		kong.Description("Generate Google Ads assets for a website with Gemini."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'adgen --help' to see available commands")
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	defer m.Close()

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps.Logger = logger

	command := kongCtx.Selected().Name
	if command == "parse" {
		return kongCtx.Run(deps)
	}

	if m.RunService == nil {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			err = fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			fmt.Fprintf(stderr, "error: %s\n", err)
			fmt.Fprintln(stderr, "Hint: Set ADGEN_DB to use a different database path")
			return err
		}
		m.RunService = sqlite.NewRunService(m.DB)
	}
	deps.Runs = m.RunService

	if command == "generate" || command == "batch" {
		render := cli.Generate.Render || cli.Batch.Render
		websiteOnly := cli.Generate.WebsiteOnly || cli.Batch.WebsiteOnly
		if err := m.wireBuilder(ctx, deps, logger, websiteOnly, render); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", err)
			return err
		}
	}

	if command == "serve" {
		// Without a Gemini key the API still serves parsing and history.
		if m.Generator == nil && m.APIKey == "" {
			fmt.Fprintln(stderr, "warning: GEMINI_API_KEY not set, run generation is disabled")
		} else if err := m.wireBuilder(ctx, deps, logger, true, cli.Serve.Render); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", err)
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireBuilder connects the Gemini generator and, for website-only runs, the
// site reader.
func (m *Main) wireBuilder(ctx context.Context, deps *Dependencies, logger *slog.Logger, websiteOnly, render bool) error {
	if m.Generator == nil {
		if m.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		m.Generator = gemini.NewGenerator(client, m.Model)
	}

	logf := stderrLogf(deps.Stderr)
	builder := &campaign.Builder{
		Generator: adgenslog.NewLoggingGenerator(m.Generator, logger),
		Runs:      m.RunService,
		Model:     m.Model,
		Logf:      logf,
	}

	if websiteOnly {
		reader, err := m.newPageReader(deps, logger, render, logf)
		if err != nil {
			return err
		}
		builder.Pages = adgenslog.NewLoggingPageReader(reader, logger)
	}

	deps.Builder = builder
	return nil
}

func (m *Main) newPageReader(deps *Dependencies, logger *slog.Logger, render bool, logf site.LogFunc) (*site.Reader, error) {
	var fetcher adgen.Fetcher
	if render {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = adgenhttp.NewFetcher()
	}
	fetcher = adgenslog.NewLoggingFetcher(fetcher, logger)
	m.closers = append(m.closers, fetcher)

	tokenCounter, err := gemini.NewTokenCounter(gemini.TokenizerModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}

	return &site.Reader{
		Sitemaps:     adgenslog.NewLoggingSitemapService(adgenhttp.NewSitemapService(nil), logger),
		Fetcher:      fetcher,
		Extractor:    trafilatura.NewExtractor(),
		Fallback:     readability.NewExtractor(),
		Meta:         goquery.NewMetaExtractor(),
		Converter:    htmltomarkdown.NewConverter(),
		TokenCounter: tokenCounter,
		RateLimiter:  site.NewDomainLimiter(site.DefaultRequestsPerSecond),
		Logf:         logf,
	}, nil
}

// stderrLogf returns a LogFunc that writes progress lines to w. It is safe
// for concurrent use.
func stderrLogf(w io.Writer) site.LogFunc {
	var mu sync.Mutex
	return func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, format+"\n", args...)
	}
}

func defaultModel() string {
	if model := os.Getenv("ADGEN_MODEL"); model != "" {
		return model
	}
	return gemini.DefaultModel
}

func defaultDBPath() string {
	if path := os.Getenv("ADGEN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "adgen.db"
	}
	dir := filepath.Join(home, ".adgen")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "adgen.db")
}
