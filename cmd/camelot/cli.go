package main

import (
	"context"
	"io"

	"github.com/kiyo-matsu/camelot"
	"github.com/kiyo-matsu/camelot/extract"
	"github.com/kiyo-matsu/camelot/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Runs      camelot.RunService
	Extractor *extract.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract tables from a PDF document"`
	Runs    RunsCmd    `cmd:"" help:"List recorded extraction runs"`
	Show    ShowCmd    `cmd:"" help:"Show the tables stored for a run"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a run and its tables"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source      string  `arg:"" help:"Path or URL of the PDF document"`
	Pages       string  `short:"p" default:"1" help:"Pages to parse: '1', 'all', or '1,3,5-7,9-end'"`
	Password    string  `help:"Password for encrypted documents"`
	Flavor      string  `short:"f" default:"lattice" enum:"lattice,stream" help:"Parsing strategy"`
	Format      string  `short:"F" default:"csv" enum:"csv,json,markdown" help:"Export format"`
	Output      string  `short:"o" default:"." help:"Output directory"`
	Name        string  `help:"Base name for exported files (defaults to the document name)"`
	Concurrency int     `short:"c" default:"1" help:"Concurrent page limit"`
	ColumnGap   float64 `default:"6" help:"Minimum whitespace gap treated as a column separator (stream)"`
	NoRecord    bool    `help:"Skip recording the run in the database"`
	Verbose     bool    `short:"v" help:"Log engine and parser activity"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Source string `help:"Filter runs by source"`
	Flavor string `help:"Filter runs by flavor"`
	Limit  int    `default:"20" help:"Maximum number of runs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Run ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Run ID"`
}
