package main

import (
	"fmt"

	"github.com/kiyo-matsu/camelot"
	"github.com/kiyo-matsu/camelot/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", camelot.ErrorMessage(err))
		return err
	}

	tables, err := deps.Runs.FindTablesByRun(deps.Ctx, run.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", camelot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "run %s  %s  %s\n\n", run.ID, run.Flavor, run.Source)

	for _, t := range tables {
		rows, cols := t.Shape()
		fmt.Fprintf(deps.Stdout, "page %d, table %d (%dx%d)\n", t.Page, t.Order, rows, cols)
		fmt.Fprintln(deps.Stdout, fs.FormatMarkdownTable(t))
	}

	return nil
}
