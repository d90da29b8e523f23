package main

import (
	"fmt"

	"github.com/kiyo-matsu/camelot"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := camelot.RunFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}
	if c.Flavor != "" {
		filter.Flavor = &c.Flavor
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", camelot.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'camelot extract' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d tables  %s\n",
			r.ID, r.Flavor, r.Source, r.TableCount, r.StartedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}
