package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/radasync"
)

// Ensure LoggingCommitter implements radasync.Committer.
var _ radasync.Committer = (*LoggingCommitter)(nil)

// LoggingCommitter wraps a Committer with logging.
type LoggingCommitter struct {
	next   radasync.Committer
	logger *slog.Logger
}

// NewLoggingCommitter creates a new LoggingCommitter.
func NewLoggingCommitter(next radasync.Committer, logger *slog.Logger) *LoggingCommitter {
	return &LoggingCommitter{next: next, logger: logger}
}

// Commit delegates to the wrapped committer and logs the operation.
func (c *LoggingCommitter) Commit(ctx context.Context, commit *radasync.Commit) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("commit",
			"paths", commit.Paths,
			"allowEmpty", commit.AllowEmpty,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Commit(ctx, commit)
}
