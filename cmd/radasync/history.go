package main

import (
	"fmt"

	"github.com/fwojciec/radasync"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.History == nil {
		err := radasync.Errorf(radasync.EINVALID, "history database unavailable")
		fmt.Fprintf(deps.Stderr, "error: %s\n", radasync.ErrorMessage(err))
		return err
	}

	filter := radasync.EditionRecordFilter{Limit: c.Limit}
	if c.Document != "" {
		filter.DocumentID = &c.Document
	}

	records, err := deps.History.FindEditionRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No editions recorded.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s  %s\n",
			r.CommittedAt.Format("2006-01-02 15:04"),
			r.DocumentID,
			r.EditionKey,
			radasync.FormatRevisionDate(r.RevisionDate),
			r.TargetFile,
			r.ContentHash,
		)
	}
	return nil
}
