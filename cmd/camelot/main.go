package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/kiyo-matsu/camelot"
	"github.com/kiyo-matsu/camelot/extract"
	camelothttp "github.com/kiyo-matsu/camelot/http"
	"github.com/kiyo-matsu/camelot/ledongthuc"
	"github.com/kiyo-matsu/camelot/parse"
	"github.com/kiyo-matsu/camelot/pdfcpu"
	camelotslog "github.com/kiyo-matsu/camelot/slog"
	"github.com/kiyo-matsu/camelot/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService camelot.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("camelot"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'camelot --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CAMELOT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	deps.DB = m.DB
	deps.Runs = m.RunService

	if cmd == "extract" {
		logger := slog.New(slog.DiscardHandler)
		if cli.Extract.Verbose {
			logger = slog.New(slog.NewTextHandler(stderr, nil))
		}

		var engine camelot.Engine = pdfcpu.NewEngine()
		if cli.Extract.Verbose {
			engine = camelotslog.NewLoggingEngine(engine, logger)
		}

		analyzer := ledongthuc.NewAnalyzer()

		deps.Extractor = &extract.Extractor{
			Engine:      engine,
			Analyzer:    analyzer,
			NewParser:   parse.Factory(analyzer, camelot.LayoutOptions{}),
			Downloader:  camelothttp.NewDownloader(),
			Concurrency: cli.Extract.Concurrency,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CAMELOT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "camelot.db"
	}
	dir := filepath.Join(home, ".camelot")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "camelot.db")
}
