package main

import (
	"fmt"

	"github.com/fwojciec/radasync"
)

// Run executes the editions command.
func (c *EditionsCmd) Run(deps *Dependencies) error {
	editions, err := deps.Source.ListEditions(deps.Ctx, c.Document)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	pending := map[string]bool{}
	list, err := radasync.PendingEditions(editions, c.Checkpoint)
	switch radasync.ErrorCode(err) {
	case "":
		for _, ed := range list {
			pending[ed.Key] = true
		}
	case radasync.EUPTODATE:
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", radasync.ErrorMessage(err))
		return err
	}

	for _, ed := range editions {
		mark := " "
		if pending[ed.Key] {
			mark = "*"
		}
		line := fmt.Sprintf("%s %3d  %s", mark, ed.Position, ed.Key)
		if ed.Status == radasync.EditionCurrent {
			line += "  (current)"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	fmt.Fprintf(deps.Stdout, "%d editions, %d pending\n", len(editions), len(pending))
	return nil
}
