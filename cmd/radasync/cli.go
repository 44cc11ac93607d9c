package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/radasync"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Endpoint  radasync.Endpoint
	Source    radasync.EditionSource
	Extractor radasync.Extractor
	Converter radasync.Converter
	History   radasync.HistoryService

	// OpenRepository binds the repository-scoped services to a mirror
	// repository path.
	OpenRepository func(ctx context.Context, path string) (*Repository, error)
}

// Repository groups the services bound to one mirror repository.
type Repository struct {
	Root      string
	Committer radasync.Committer
	Documents radasync.DocumentStore
	Ledger    radasync.LedgerStore
	Messages  radasync.MessageStore

	// Cleanup releases scratch resources. May be nil.
	Cleanup func() error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Source    string        `enum:"card,page" default:"card" env:"RADASYNC_SOURCE" help:"Edition source: card (JSON card API) or page (scraped edition selector)"`
	BaseURL   string        `name:"base-url" default:"https://data.rada.gov.ua" env:"RADASYNC_BASE_URL" help:"Portal base URL"`
	Timeout   time.Duration `default:"30s" help:"Per-request timeout"`
	RPS       float64       `name:"rps" default:"1" help:"Maximum requests per second to the portal"`
	Browser   bool          `help:"Fetch pages with headless Chrome"`
	Extractor string        `enum:"none,trafilatura,readability" default:"none" help:"Main-content extractor applied before conversion"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`
	DB        string        `name:"db" env:"RADASYNC_DB" help:"History database path (default ~/.radasync/history.db)"`

	Sync     SyncCmd     `cmd:"" help:"Mirror document editions into a git repository"`
	Editions EditionsCmd `cmd:"" help:"List the editions of a document"`
	Ledger   LedgerCmd   `cmd:"" help:"Show documents tracked by a mirror repository"`
	History  HistoryCmd  `cmd:"" help:"Show committed editions"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Repo       string `arg:"" help:"Mirror repository path"`
	Document   string `arg:"" optional:"" help:"Document identifier, e.g. 435-15 (omit to sync every tracked document)"`
	Target     string `arg:"" optional:"" help:"Target markdown file relative to the repository root"`
	Checkpoint string `arg:"" optional:"" help:"Last processed edition; editions after it are synced"`

	CooldownMin time.Duration `name:"cooldown-min" default:"5s" help:"Minimum pause between editions"`
	CooldownMax time.Duration `name:"cooldown-max" default:"105s" help:"Maximum pause between editions"`
	AllowEmpty  bool          `name:"allow-empty" help:"Record editions whose text did not change"`
	Resume      bool          `help:"Start from the ledger checkpoint when no checkpoint is given"`
	MinLength   int           `name:"min-length" default:"100" help:"Minimum markdown length accepted as edition text"`
}

// EditionsCmd is the "editions" subcommand.
type EditionsCmd struct {
	Document   string `arg:"" help:"Document identifier"`
	Checkpoint string `short:"c" help:"Mark editions pending after this checkpoint"`
}

// LedgerCmd is the "ledger" subcommand.
type LedgerCmd struct {
	Repo string `arg:"" help:"Mirror repository path"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Document string `short:"d" help:"Only show records of this document"`
	Limit    int    `short:"n" default:"20" help:"Maximum number of records"`
}
