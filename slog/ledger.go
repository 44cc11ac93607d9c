package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/radasync"
)

// Ensure LoggingLedgerStore implements radasync.LedgerStore.
var _ radasync.LedgerStore = (*LoggingLedgerStore)(nil)

// LoggingLedgerStore wraps a LedgerStore with logging.
type LoggingLedgerStore struct {
	next   radasync.LedgerStore
	logger *slog.Logger
}

// NewLoggingLedgerStore creates a new LoggingLedgerStore.
func NewLoggingLedgerStore(next radasync.LedgerStore, logger *slog.Logger) *LoggingLedgerStore {
	return &LoggingLedgerStore{next: next, logger: logger}
}

func (s *LoggingLedgerStore) LoadLedger(ctx context.Context) (ledger *radasync.Ledger, err error) {
	defer func(begin time.Time) {
		var n int
		if ledger != nil {
			n = len(ledger.Files)
		}
		s.logger.Debug("load ledger",
			"path", s.next.Path(),
			"documents", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadLedger(ctx)
}

func (s *LoggingLedgerStore) SaveLedger(ctx context.Context, ledger *radasync.Ledger) (err error) {
	defer func(begin time.Time) {
		var n int
		if ledger != nil {
			n = len(ledger.Files)
		}
		s.logger.Debug("save ledger",
			"path", s.next.Path(),
			"documents", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveLedger(ctx, ledger)
}

func (s *LoggingLedgerStore) Path() string {
	return s.next.Path()
}
