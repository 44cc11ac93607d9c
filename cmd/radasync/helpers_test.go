package main_test

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/fwojciec/radasync"
	main "github.com/fwojciec/radasync/cmd/radasync"
	"github.com/fwojciec/radasync/mock"
)

var civilCode = strings.Repeat("Стаття 1. Цивільним законодавством регулюються особисті немайнові та майнові відносини. ", 2)

// testEnv wires command dependencies to in-memory mocks.
type testEnv struct {
	deps     *main.Dependencies
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	editions map[string][]string
	ledger   *radasync.Ledger
	files    map[string]string
	commits  []*radasync.Commit
	cleaned  bool
}

func newTestEnv() *testEnv {
	env := &testEnv{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		editions: map[string][]string{},
		ledger:   &radasync.Ledger{},
		files:    map[string]string{},
	}

	repo := &main.Repository{
		Root: "/repo",
		Committer: &mock.Committer{
			CommitFn: func(ctx context.Context, c *radasync.Commit) error {
				env.commits = append(env.commits, c)
				return nil
			},
		},
		Documents: &mock.DocumentStore{
			DocumentExistsFn: func(ctx context.Context, path string) (bool, error) {
				_, ok := env.files[path]
				return ok, nil
			},
			WriteDocumentFn: func(ctx context.Context, path, markdown string) error {
				env.files[path] = markdown
				return nil
			},
		},
		Ledger: &mock.LedgerStore{
			LoadLedgerFn: func(ctx context.Context) (*radasync.Ledger, error) { return env.ledger, nil },
			SaveLedgerFn: func(ctx context.Context, l *radasync.Ledger) error { return nil },
			PathFn:       func() string { return "radasync.json" },
		},
		Messages: &mock.MessageStore{
			WriteMessageFn: func(ctx context.Context, message string) (string, error) {
				return "/scratch/COMMIT_MESSAGE.txt", nil
			},
		},
		Cleanup: func() error {
			env.cleaned = true
			return nil
		},
	}

	env.deps = &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   env.stdout,
		Stderr:   env.stderr,
		Endpoint: radasync.NewEndpoint(radasync.DefaultBaseURL),
		Source: &mock.EditionSource{
			ListEditionsFn: func(ctx context.Context, documentID string) ([]radasync.Edition, error) {
				keys, ok := env.editions[documentID]
				if !ok {
					return nil, radasync.Errorf(radasync.ENOTFOUND, "document %s not found", documentID)
				}
				out := make([]radasync.Edition, len(keys))
				for i, k := range keys {
					out[i] = radasync.Edition{Key: k, Position: i}
				}
				out[len(out)-1].Status = radasync.EditionCurrent
				return out, nil
			},
			FetchMetadataFn: func(ctx context.Context, documentID, editionKey string) (*radasync.EditionMetadata, error) {
				return &radasync.EditionMetadata{
					Title:        "Цивільний кодекс України",
					RegNumber:    "435-IV",
					RevisionDate: strings.TrimPrefix(editionKey, "ed"),
				}, nil
			},
			FetchContentFn: func(ctx context.Context, documentID, editionKey string) (string, error) {
				return civilCode + editionKey, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) { return html + "\n", nil },
		},
		OpenRepository: func(ctx context.Context, path string) (*main.Repository, error) {
			if path != "/repo" {
				return nil, radasync.Errorf(radasync.EINVALID, "%s is not a git work tree", path)
			}
			return repo, nil
		},
	}
	return env
}

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
