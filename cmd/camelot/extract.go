package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kiyo-matsu/camelot"
	"github.com/kiyo-matsu/camelot/extract"
	"github.com/kiyo-matsu/camelot/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	tables, err := deps.Extractor.Parse(deps.Ctx, c.Source, extract.Options{
		Pages:    c.Pages,
		Password: c.Password,
		Flavor:   c.Flavor,
		Parser:   camelot.ParserOptions{ColumnGap: c.ColumnGap},
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", camelot.ErrorMessage(err))
		return err
	}

	if len(tables) == 0 {
		fmt.Fprintln(deps.Stdout, "No tables found.")
		return nil
	}

	name := c.Name
	if name == "" {
		name = baseName(c.Source)
	}

	// Tables are staged and published atomically: a failed export never
	// leaves a half-written directory behind.
	store, err := fs.NewExportStore(c.Output, name, c.Format)
	if err != nil {
		return err
	}
	if err := store.WriteTables(deps.Ctx, tables, name); err != nil {
		_ = store.Abort()
		return err
	}
	if err := store.Commit(); err != nil {
		return err
	}

	if !c.NoRecord {
		if err := c.record(deps, tables); err != nil {
			return err
		}
	}

	for _, t := range tables {
		rows, cols := t.Shape()
		fmt.Fprintf(deps.Stdout, "%s  (%dx%d)\n",
			filepath.Join(c.Output, name, fs.TablePath(name, t, c.Format)), rows, cols)
	}
	fmt.Fprintf(deps.Stdout, "%d tables extracted.\n", len(tables))

	return nil
}

// record persists the run and its tables.
func (c *ExtractCmd) record(deps *Dependencies, tables camelot.TableList) error {
	run := &camelot.Run{
		Source: c.Source,
		Flavor: c.Flavor,
		Pages:  c.Pages,
	}
	if !strings.HasPrefix(c.Source, "http://") && !strings.HasPrefix(c.Source, "https://") {
		fp, err := fs.Fingerprint(c.Source)
		if err != nil {
			return err
		}
		run.Fingerprint = fp
	}

	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		return err
	}
	if err := deps.Runs.CreateTables(deps.Ctx, run.ID, tables); err != nil {
		return err
	}
	if err := deps.Runs.FinishRun(deps.Ctx, run.ID, len(tables)); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "run %s recorded\n", run.ID)
	return nil
}

func baseName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
