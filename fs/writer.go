// Package fs provides file-based export of extracted tables.
package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kiyo-matsu/camelot"
)

// Supported export formats.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// TablePath returns the relative file path for a single exported table.
// Example: report, page 2, table 1, csv → report-page-2-table-1.csv
func TablePath(name string, table *camelot.Table, format string) string {
	ext := format
	if format == FormatMarkdown {
		ext = "md"
	}
	return fmt.Sprintf("%s-page-%d-table-%d.%s", name, table.Page, table.Order, ext)
}

// Ensure Writer implements camelot.TableWriter at compile time.
var _ camelot.TableWriter = (*Writer)(nil)

// Writer exports tables as one file per table in a directory.
type Writer struct {
	baseDir string
	format  string
}

// NewWriter creates a Writer for the given base directory and format.
// Format must be one of FormatCSV, FormatJSON or FormatMarkdown.
func NewWriter(baseDir, format string) (*Writer, error) {
	switch format {
	case FormatCSV, FormatJSON, FormatMarkdown:
	default:
		return nil, camelot.Errorf(camelot.EINVALID, "unknown export format %q", format)
	}
	return &Writer{baseDir: baseDir, format: format}, nil
}

// WriteTables writes every table in the list under the given base name.
func (w *Writer) WriteTables(ctx context.Context, tables camelot.TableList, name string) error {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := formatTable(t, w.format)
		if err != nil {
			return err
		}

		fullPath := filepath.Join(w.baseDir, TablePath(name, t, w.format))
		if err := os.WriteFile(fullPath, content, 0644); err != nil {
			return err
		}
	}

	return nil
}

func formatTable(t *camelot.Table, format string) ([]byte, error) {
	switch format {
	case FormatCSV:
		return formatCSV(t)
	case FormatJSON:
		return formatJSON(t)
	case FormatMarkdown:
		return []byte(FormatMarkdownTable(t)), nil
	default:
		return nil, camelot.Errorf(camelot.EINVALID, "unknown export format %q", format)
	}
}

func formatCSV(t *camelot.Table) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func formatJSON(t *camelot.Table) ([]byte, error) {
	return json.MarshalIndent(t.Rows, "", "  ")
}

// FormatMarkdownTable renders a table as a GitHub-style markdown table.
// The first row is treated as the header.
func FormatMarkdownTable(t *camelot.Table) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, c := range cells {
			b.WriteString(" ")
			b.WriteString(strings.ReplaceAll(c, "|", "\\|"))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(t.Rows[0])
	b.WriteString("|")
	for range t.Rows[0] {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}
	return b.String()
}
