package mock

import (
	"context"

	"github.com/fwojciec/radasync"
)

var _ radasync.LedgerStore = (*LedgerStore)(nil)

// LedgerStore is a mock implementation of radasync.LedgerStore.
type LedgerStore struct {
	LoadLedgerFn func(ctx context.Context) (*radasync.Ledger, error)
	SaveLedgerFn func(ctx context.Context, ledger *radasync.Ledger) error
	PathFn       func() string
}

func (s *LedgerStore) LoadLedger(ctx context.Context) (*radasync.Ledger, error) {
	return s.LoadLedgerFn(ctx)
}

func (s *LedgerStore) SaveLedger(ctx context.Context, ledger *radasync.Ledger) error {
	return s.SaveLedgerFn(ctx, ledger)
}

func (s *LedgerStore) Path() string {
	return s.PathFn()
}
