package main

import (
	"fmt"

	"github.com/fwojciec/radasync"
)

// Run executes the ledger command.
func (c *LedgerCmd) Run(deps *Dependencies) error {
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

	if len(ledger.Files) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents tracked.")
		return nil
	}

	for _, e := range ledger.Files {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			e.DocumentID, e.TargetFile, e.LastProcessedEdition, e.LastSyncDate.Format("2006-01-02 15:04"))
	}
	return nil
}
