// Package mirror drives the edition pipeline: it resolves pending editions
// of a document and records each of them as one commit in the mirror
// repository.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/radasync"
)

// DefaultMinContentLength is the shortest markdown, in characters, accepted
// as an edition's text.
const DefaultMinContentLength = 100

// Syncer mirrors document editions into a repository.
type Syncer struct {
	Source      radasync.EditionSource
	Endpoint    radasync.Endpoint
	Extractor   radasync.Extractor // optional
	Converter   radasync.Converter
	Documents   radasync.DocumentStore
	Messages    radasync.MessageStore
	Ledger      *radasync.Ledger
	LedgerStore radasync.LedgerStore
	Committer   radasync.Committer
	History     radasync.HistoryService // optional
	Logger      *slog.Logger

	Cooldown         Cooldown
	MinContentLength int
	AllowEmpty       bool
	Now              func() time.Time
}

// Target names a document and where its file lives in the repository.
type Target struct {
	DocumentID string
	TargetFile string
	Checkpoint string // empty syncs every edition
}

// Validate returns an error if the target contains invalid fields.
func (t Target) Validate() error {
	if strings.TrimSpace(t.DocumentID) == "" {
		return radasync.Errorf(radasync.EINVALID, "document ID required")
	}
	return radasync.ValidateTargetFile(t.TargetFile)
}

// Result holds the outcome of syncing one document.
type Result struct {
	DocumentID  string
	Pending     int
	Committed   int
	LastEdition string
}

// Outcome is the per-document result of a batch sync.
type Outcome struct {
	DocumentID string
	Committed  int
	UpToDate   bool
	Err        error
}

// SyncDocument commits every edition of the target document after its
// checkpoint, oldest first. Processing stops at the first failure; editions
// committed before it stay recorded in the ledger. The returned Result is
// non-nil whenever editions were resolved, including on failure.
func (s *Syncer) SyncDocument(ctx context.Context, target Target, progress ProgressFunc) (*Result, error) {
	result, err := s.syncDocument(ctx, target, progress)
	if err != nil && radasync.ErrorCode(err) != radasync.EUPTODATE {
		progress.emit(ProgressEvent{
			Type:       DocumentFailed,
			DocumentID: target.DocumentID,
			Error:      err,
		})
	}
	return result, err
}

func (s *Syncer) syncDocument(ctx context.Context, target Target, progress ProgressFunc) (*Result, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if e := s.Ledger.FindEntry(target.DocumentID); e != nil && e.TargetFile != target.TargetFile {
		return nil, radasync.Errorf(radasync.EINVALID, "document %s is already mirrored to %s", target.DocumentID, e.TargetFile)
	}

	editions, err := s.Source.ListEditions(ctx, target.DocumentID)
	if err != nil {
		return nil, err
	}

	pending, err := radasync.PendingEditions(editions, target.Checkpoint)
	if err != nil {
		return nil, err
	}

	result := &Result{DocumentID: target.DocumentID, Pending: len(pending)}
	for i, ed := range pending {
		progress.emit(ProgressEvent{
			Type:       EditionStarted,
			DocumentID: target.DocumentID,
			Edition:    ed.Key,
			Index:      i,
			Total:      len(pending),
		})

		if err := s.syncEdition(ctx, target, ed); err != nil {
			return result, fmt.Errorf("edition %s of %s: %w", ed.Key, target.DocumentID, err)
		}

		result.Committed++
		result.LastEdition = ed.Key
		progress.emit(ProgressEvent{
			Type:       EditionCommitted,
			DocumentID: target.DocumentID,
			Edition:    ed.Key,
			Index:      i,
			Total:      len(pending),
		})

		if i == len(pending)-1 {
			break
		}
		if err := s.cooldown(ctx, target.DocumentID, progress); err != nil {
			return result, err
		}
	}

	return result, nil
}

// SyncAll syncs every document tracked in the ledger from its stored
// checkpoint. A failing document does not stop the batch; its error is
// reported in its Outcome.
func (s *Syncer) SyncAll(ctx context.Context, progress ProgressFunc) []Outcome {
	targets := make([]Target, 0, len(s.Ledger.Files))
	for _, e := range s.Ledger.Files {
		targets = append(targets, Target{
			DocumentID: e.DocumentID,
			TargetFile: e.TargetFile,
			Checkpoint: e.LastProcessedEdition,
		})
	}

	outcomes := make([]Outcome, 0, len(targets))
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, Outcome{DocumentID: target.DocumentID, Err: err})
			continue
		}

		outcome := Outcome{DocumentID: target.DocumentID}
		res, err := s.SyncDocument(ctx, target, progress)
		if res != nil {
			outcome.Committed = res.Committed
		}
		switch {
		case err == nil:
		case radasync.ErrorCode(err) == radasync.EUPTODATE:
			outcome.UpToDate = true
		default:
			outcome.Err = err
			s.logger().Error("sync document", "document", target.DocumentID, "committed", outcome.Committed, "err", err)
		}
		outcomes = append(outcomes, outcome)

		if outcome.Committed > 0 && i < len(targets)-1 {
			_ = s.cooldown(ctx, target.DocumentID, progress)
		}
	}
	return outcomes
}

// syncEdition takes one edition from Resolved to Committed. The commit
// message is prepared before the document is written so the action reflects
// whether the file existed beforehand.
func (s *Syncer) syncEdition(ctx context.Context, target Target, ed radasync.Edition) error {
	meta, err := s.Source.FetchMetadata(ctx, target.DocumentID, ed.Key)
	if err != nil {
		return err
	}
	exists, err := s.Documents.DocumentExists(ctx, target.TargetFile)
	if err != nil {
		return err
	}
	msg := radasync.NewCommitMessage(meta, s.Endpoint.DocumentURL(target.DocumentID, ed.Key), exists)
	messageFile, err := s.Messages.WriteMessage(ctx, msg.String())
	if err != nil {
		return fmt.Errorf("write commit message: %w", err)
	}

	raw, err := s.Source.FetchContent(ctx, target.DocumentID, ed.Key)
	if err != nil {
		return err
	}
	markdown, err := s.render(raw)
	if err != nil {
		return err
	}
	if err := s.Documents.WriteDocument(ctx, target.TargetFile, markdown); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	var prev *radasync.LedgerEntry
	if e := s.Ledger.FindEntry(target.DocumentID); e != nil {
		c := *e
		prev = &c
	}

	now := s.now()
	s.Ledger.Upsert(target.DocumentID, ed.Key, target.TargetFile, now)
	if err := s.LedgerStore.SaveLedger(ctx, s.Ledger); err != nil {
		s.restoreEntry(target.DocumentID, prev)
		return fmt.Errorf("save ledger: %w", err)
	}

	if err := s.Committer.Commit(ctx, &radasync.Commit{
		MessageFile: messageFile,
		Paths:       []string{target.TargetFile, s.LedgerStore.Path()},
		AllowEmpty:  s.AllowEmpty,
	}); err != nil {
		err = fmt.Errorf("commit: %w", err)
		s.restoreEntry(target.DocumentID, prev)
		if serr := s.LedgerStore.SaveLedger(ctx, s.Ledger); serr != nil {
			return errors.Join(err, fmt.Errorf("restore ledger: %w", serr))
		}
		return err
	}

	s.record(ctx, &radasync.EditionRecord{
		DocumentID:   target.DocumentID,
		EditionKey:   ed.Key,
		Title:        meta.Title,
		RegNumber:    meta.RegNumber,
		RevisionDate: meta.RevisionDate,
		Basis:        meta.Basis,
		TargetFile:   target.TargetFile,
		ContentHash:  ContentHash(markdown),
		CommittedAt:  now,
	})
	return nil
}

// restoreEntry puts back the ledger entry a document had before the current
// edition, or drops it when the document was not tracked yet.
func (s *Syncer) restoreEntry(documentID string, prev *radasync.LedgerEntry) {
	if prev == nil {
		s.Ledger.Remove(documentID)
		return
	}
	if e := s.Ledger.FindEntry(documentID); e != nil {
		*e = *prev
	}
}

// render turns raw edition markup into markdown, rejecting results too short
// to be the document text.
func (s *Syncer) render(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", radasync.Errorf(radasync.ENOCONTENT, "edition content is empty")
	}

	html := raw
	if s.Extractor != nil {
		res, err := s.Extractor.Extract(raw)
		if err != nil {
			return "", err
		}
		html = res.ContentHTML
	}

	markdown, err := s.Converter.Convert(html)
	if err != nil {
		return "", err
	}

	minLen := s.MinContentLength
	if minLen <= 0 {
		minLen = DefaultMinContentLength
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(markdown)); n < minLen {
		return "", radasync.Errorf(radasync.ENOCONTENT, "edition text too short: %d characters", n)
	}
	return markdown, nil
}

func (s *Syncer) cooldown(ctx context.Context, documentID string, progress ProgressFunc) error {
	d := s.Cooldown.Duration()
	progress.emit(ProgressEvent{
		Type:       CooldownStarted,
		DocumentID: documentID,
		Delay:      d,
	})
	return s.Cooldown.Wait(ctx, d)
}

// record stores a history entry. Failures are logged and otherwise ignored
// since the commit already happened.
func (s *Syncer) record(ctx context.Context, rec *radasync.EditionRecord) {
	if s.History == nil {
		return
	}
	if err := s.History.RecordEdition(ctx, rec); err != nil {
		s.logger().Warn("record edition", "document", rec.DocumentID, "edition", rec.EditionKey, "err", err)
	}
}

func (s *Syncer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Syncer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// ContentHash returns the hex xxHash of markdown.
func ContentHash(markdown string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(markdown))
}
