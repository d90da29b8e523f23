package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/kiyo-matsu/camelot"
)

// Ensure ExportStore implements camelot.TableWriter at compile time.
var _ camelot.TableWriter = (*ExportStore)(nil)

// ExportStore implements camelot.TableWriter with atomic update semantics.
// Tables are written to a temporary directory, then moved atomically on
// Commit, so readers never observe a half-written export.
type ExportStore struct {
	baseDir string
	name    string
	format  string
}

// NewExportStore creates a new ExportStore.
// baseDir is the parent directory, name is the output directory name.
// Files are written to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExportStore(baseDir, name, format string) (*ExportStore, error) {
	switch format {
	case FormatCSV, FormatJSON, FormatMarkdown:
	default:
		return nil, camelot.Errorf(camelot.EINVALID, "unknown export format %q", format)
	}
	return &ExportStore{
		baseDir: baseDir,
		name:    name,
		format:  format,
	}, nil
}

func (s *ExportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ExportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteTables writes every table in the list to the temporary directory.
func (s *ExportStore) WriteTables(ctx context.Context, tables camelot.TableList, name string) error {
	w := &Writer{baseDir: s.tempDir(), format: s.format}
	return w.WriteTables(ctx, tables, name)
}

// Commit atomically replaces the final directory with the staged export.
func (s *ExportStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staged export.
func (s *ExportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
