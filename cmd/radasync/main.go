package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/radasync"
	"github.com/fwojciec/radasync/fs"
	"github.com/fwojciec/radasync/git"
	"github.com/fwojciec/radasync/goquery"
	"github.com/fwojciec/radasync/htmltomarkdown"
	radahttp "github.com/fwojciec/radasync/http"
	"github.com/fwojciec/radasync/readability"
	"github.com/fwojciec/radasync/rod"
	radaslog "github.com/fwojciec/radasync/slog"
	"github.com/fwojciec/radasync/sqlite"
	"github.com/fwojciec/radasync/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the sync history. Opened by Run when needed.
	DB *sqlite.DB

	// NewBrowser starts the headless browser used for document pages when
	// --browser is set.
	NewBrowser func(timeout time.Duration) (radasync.Fetcher, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewBrowser: func(timeout time.Duration) (radasync.Fetcher, error) {
			return rod.NewFetcher(rod.WithFetchTimeout(timeout))
		},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
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
		kong.Name("radasync"),
		kong.Description("Mirror Ukrainian legislation editions into git history"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'radasync --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Endpoint = radasync.NewEndpoint(cli.BaseURL)
	deps.OpenRepository = openRepository(deps.Logger)

	if cmd == "sync" || cmd == "history" {
		if err := m.openHistory(cli.DB); err != nil {
			if cmd == "history" {
				fmt.Fprintln(stderr, "Hint: Set RADASYNC_DB to use a different database path")
				return err
			}
			deps.Logger.Warn("history disabled", "err", err)
		} else {
			defer m.Close()
			deps.History = sqlite.NewHistoryService(m.DB)
		}
	}

	if cmd == "sync" || cmd == "editions" {
		// Cards are JSON and always go over plain HTTP; a browser would wrap
		// them in its JSON viewer markup.
		var cards radasync.Fetcher = radaslog.NewLoggingFetcher(radahttp.NewFetcher(
			radahttp.WithTimeout(cli.Timeout),
			radahttp.WithRateLimit(cli.RPS),
		), deps.Logger)
		defer cards.Close()

		pages := cards
		if cli.Browser {
			b, err := m.NewBrowser(cli.Timeout)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			pages = radaslog.NewLoggingFetcher(b, deps.Logger)
			defer pages.Close()
		}

		deps.Source = newSource(cli.Source, pages, cards, deps.Endpoint, deps.Logger)
		deps.Extractor = newExtractor(cli.Extractor)
		deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cli.BaseURL))
	}

	return kongCtx.Run(deps)
}

func (m *Main) openHistory(path string) error {
	if path == "" {
		p, err := sqlite.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

// newSource builds the edition source. Document pages and edition content
// are fetched with pages, cards with cardFetcher.
func newSource(kind string, pages, cardFetcher radasync.Fetcher, endpoint radasync.Endpoint, logger *slog.Logger) radasync.EditionSource {
	cards := radahttp.NewCardService(cardFetcher, endpoint)

	var src radasync.EditionSource
	switch kind {
	case "page":
		src = goquery.NewPageSource(pages, cards, endpoint, goquery.DefaultMarkers())
	default:
		src = radahttp.NewCardSource(cards, pages, endpoint)
	}
	return radaslog.NewLoggingEditionSource(src, logger)
}

func newExtractor(kind string) radasync.Extractor {
	switch kind {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return nil
	}
}

// openRepository returns a function binding git, file stores and a scratch
// directory for commit messages to a repository path.
func openRepository(logger *slog.Logger) func(ctx context.Context, path string) (*Repository, error) {
	return func(ctx context.Context, path string) (*Repository, error) {
		repo, err := git.Open(ctx, path)
		if err != nil {
			return nil, err
		}

		scratch, err := os.MkdirTemp("", "radasync-")
		if err != nil {
			return nil, err
		}

		root := repo.Root()
		return &Repository{
			Root:      root,
			Committer: radaslog.NewLoggingCommitter(repo, logger),
			Documents: fs.NewDocumentStore(root),
			Ledger:    radaslog.NewLoggingLedgerStore(fs.NewLedgerStore(root), logger),
			Messages:  fs.NewMessageStore(scratch),
			Cleanup:   func() error { return os.RemoveAll(scratch) },
		}, nil
	}
}
