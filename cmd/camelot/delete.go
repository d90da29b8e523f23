package main

import (
	"fmt"

	"github.com/kiyo-matsu/camelot"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", camelot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "run %s deleted\n", c.ID)
	return nil
}
