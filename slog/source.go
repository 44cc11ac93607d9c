package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/radasync"
)

// Ensure LoggingEditionSource implements radasync.EditionSource.
var _ radasync.EditionSource = (*LoggingEditionSource)(nil)

// LoggingEditionSource wraps an EditionSource with logging.
type LoggingEditionSource struct {
	next   radasync.EditionSource
	logger *slog.Logger
}

// NewLoggingEditionSource creates a new LoggingEditionSource.
func NewLoggingEditionSource(next radasync.EditionSource, logger *slog.Logger) *LoggingEditionSource {
	return &LoggingEditionSource{next: next, logger: logger}
}

func (s *LoggingEditionSource) ListEditions(ctx context.Context, documentID string) (editions []radasync.Edition, err error) {
	defer func(begin time.Time) {
		var current string
		if len(editions) > 0 {
			current = editions[len(editions)-1].Key
		}
		s.logger.Info("list editions",
			"document", documentID,
			"count", len(editions),
			"current", current,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListEditions(ctx, documentID)
}

func (s *LoggingEditionSource) FetchContent(ctx context.Context, documentID, editionKey string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch content",
			"document", documentID,
			"edition", editionKey,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchContent(ctx, documentID, editionKey)
}

func (s *LoggingEditionSource) FetchMetadata(ctx context.Context, documentID, editionKey string) (meta *radasync.EditionMetadata, err error) {
	defer func(begin time.Time) {
		var title string
		if meta != nil {
			title = meta.Title
		}
		s.logger.Debug("fetch metadata",
			"document", documentID,
			"edition", editionKey,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchMetadata(ctx, documentID, editionKey)
}
