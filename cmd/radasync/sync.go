package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/radasync"
	"github.com/fwojciec/radasync/mirror"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	if c.Document != "" && c.Target == "" {
		fmt.Fprintln(deps.Stderr, "usage: radasync sync <repo> [<document> <target> [<checkpoint>]]")
		return radasync.Errorf(radasync.EINVALID, "target file required with a document")
	}

	repo, err := deps.OpenRepository(deps.Ctx, c.Repo)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radasync.ErrorMessage(err))
		return err
	}
	if repo.Cleanup != nil {
		defer repo.Cleanup()
	}

	ledger, err := repo.Ledger.LoadLedger(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radasync.ErrorMessage(err))
		return err
	}

	syncer := &mirror.Syncer{
		Source:           deps.Source,
		Endpoint:         deps.Endpoint,
		Extractor:        deps.Extractor,
		Converter:        deps.Converter,
		Documents:        repo.Documents,
		Messages:         repo.Messages,
		Ledger:           ledger,
		LedgerStore:      repo.Ledger,
		Committer:        repo.Committer,
		History:          deps.History,
		Logger:           deps.Logger,
		Cooldown:         mirror.Cooldown{Min: c.CooldownMin, Max: c.CooldownMax},
		MinContentLength: c.MinLength,
		AllowEmpty:       c.AllowEmpty,
	}
	progress := printProgress(deps.Stdout)

	if c.Document == "" {
		return c.syncAll(deps, syncer, len(ledger.Files), progress)
	}

	checkpoint := c.Checkpoint
	if checkpoint == "" && c.Resume {
		if e := ledger.FindEntry(c.Document); e != nil {
			checkpoint = e.LastProcessedEdition
		}
	}
	if checkpoint != "" {
		fmt.Fprintf(deps.Stdout, "Starting after edition %s\n", checkpoint)
	}

	res, err := syncer.SyncDocument(deps.Ctx, mirror.Target{
		DocumentID: c.Document,
		TargetFile: c.Target,
		Checkpoint: checkpoint,
	}, progress)
	if err != nil {
		if res != nil && res.Committed > 0 {
			fmt.Fprintf(deps.Stdout, "Committed %d of %d editions of %s\n", res.Committed, res.Pending, c.Document)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Committed %d editions of %s (last %s)\n", res.Committed, c.Document, res.LastEdition)
	return nil
}

func (c *SyncCmd) syncAll(deps *Dependencies, syncer *mirror.Syncer, tracked int, progress mirror.ProgressFunc) error {
	if tracked == 0 {
		fmt.Fprintln(deps.Stdout, "No documents tracked. Use 'radasync sync <repo> <document> <target>' to add one.")
		return nil
	}

	var committed, upToDate, failed int
	for _, o := range syncer.SyncAll(deps.Ctx, progress) {
		switch {
		case o.Err != nil:
			failed++
			fmt.Fprintf(deps.Stderr, "  %s: %s\n", o.DocumentID, errorText(o.Err))
		case o.UpToDate:
			upToDate++
			fmt.Fprintf(deps.Stdout, "  %s: up to date\n", o.DocumentID)
		default:
			fmt.Fprintf(deps.Stdout, "  %s: %d editions committed\n", o.DocumentID, o.Committed)
		}
		committed += o.Committed
	}

	fmt.Fprintf(deps.Stdout, "Synced %d documents: %d editions committed, %d up to date, %d failed\n",
		tracked, committed, upToDate, failed)
	return nil
}

// printProgress reports pipeline progress on w.
func printProgress(w io.Writer) mirror.ProgressFunc {
	return func(e mirror.ProgressEvent) {
		switch e.Type {
		case mirror.EditionStarted:
			fmt.Fprintf(w, "[%d/%d] %s %s\n", e.Index+1, e.Total, e.DocumentID, e.Edition)
		case mirror.CooldownStarted:
			fmt.Fprintf(w, "  waiting %s\n", e.Delay.Round(time.Second))
		}
	}
}

// errorText prefers the application message, falling back to the full error
// for collaborator failures.
func errorText(err error) string {
	if radasync.ErrorCode(err) == radasync.EINTERNAL {
		return err.Error()
	}
	return radasync.ErrorMessage(err)
}
