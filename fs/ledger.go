package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/radasync"
)

// LedgerFileName is the ledger location relative to the repository root.
const LedgerFileName = "radasync.json"

// Ensure LedgerStore implements radasync.LedgerStore at compile time.
var _ radasync.LedgerStore = (*LedgerStore)(nil)

// LedgerStore persists the ledger as a JSON file at the repository root.
type LedgerStore struct {
	root string
}

// NewLedgerStore creates a LedgerStore for the repository at root.
func NewLedgerStore(root string) *LedgerStore {
	return &LedgerStore{root: root}
}

// Path returns the ledger location relative to the repository root.
func (s *LedgerStore) Path() string {
	return LedgerFileName
}

func (s *LedgerStore) fullPath() string {
	return filepath.Join(s.root, LedgerFileName)
}

// LoadLedger reads the ledger. A missing file yields an empty ledger.
func (s *LedgerStore) LoadLedger(ctx context.Context) (*radasync.Ledger, error) {
	data, err := os.ReadFile(s.fullPath())
	if errors.Is(err, os.ErrNotExist) {
		return &radasync.Ledger{Files: []*radasync.LedgerEntry{}}, nil
	} else if err != nil {
		return nil, err
	}

	var ledger radasync.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, radasync.Errorf(radasync.EINVALID, "parse %s: %v", LedgerFileName, err)
	}
	if ledger.Files == nil {
		ledger.Files = []*radasync.LedgerEntry{}
	}
	for _, e := range ledger.Files {
		if e == nil {
			return nil, radasync.Errorf(radasync.EINVALID, "parse %s: null entry", LedgerFileName)
		}
		if err := e.Validate(); err != nil {
			return nil, radasync.Errorf(radasync.EINVALID, "parse %s: %s", LedgerFileName, radasync.ErrorMessage(err))
		}
	}
	return &ledger, nil
}

// SaveLedger overwrites the ledger file with indented JSON.
func (s *LedgerStore) SaveLedger(ctx context.Context, ledger *radasync.Ledger) error {
	if ledger == nil {
		return radasync.Errorf(radasync.EINVALID, "ledger required")
	}
	out := *ledger
	if out.Files == nil {
		out.Files = []*radasync.LedgerEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return err
	}
	return writeFileAtomic(s.fullPath(), buf.Bytes(), 0644)
}
