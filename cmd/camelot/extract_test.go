package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kiyo-matsu/camelot"
	"github.com/kiyo-matsu/camelot/extract"
	"github.com/kiyo-matsu/camelot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testExtractor wires an extractor over mocks that report one table on the
// first page.
func testExtractor(tables camelot.TableList) *extract.Extractor {
	doc := &mock.Document{
		PageCountFn: func(ctx context.Context) (int, error) { return 1, nil },
		PageFn: func(ctx context.Context, n int) (camelot.PageInfo, error) {
			return camelot.PageInfo{Number: n, Width: 612, Height: 792}, nil
		},
		ExtractPageFn: func(ctx context.Context, n int, destPath string) error {
			return os.WriteFile(destPath, []byte("pdf"), 0644)
		},
	}
	return &extract.Extractor{
		Engine: &mock.Engine{
			OpenFn: func(ctx context.Context, path, password string) (camelot.Document, error) {
				return doc, nil
			},
		},
		Analyzer: &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, path string, opts camelot.LayoutOptions) (*camelot.PageLayout, error) {
				return &camelot.PageLayout{
					Horizontal: []camelot.TextLine{{Text: "plain", X0: 10, Y0: 10, X1: 100, Y1: 20}},
				}, nil
			},
		},
		NewParser: func(flavor string, opts camelot.ParserOptions) (camelot.Parser, error) {
			return &mock.Parser{
				ExtractTablesFn: func(ctx context.Context, pagePath string, pageNumber int) (camelot.TableList, error) {
					return tables, nil
				},
			}, nil
		},
	}
}

func TestExtractCmd_Run_publishes_export_atomically(t *testing.T) {
	t.Parallel()

	source := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(source, []byte("pdf"), 0644))
	output := t.TempDir()

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Extractor: testExtractor(camelot.TableList{
			{Page: 1, Y1: 700, Rows: [][]string{{"Name", "Qty"}, {"Apples", "4"}}},
		}),
	}

	cmd := &ExtractCmd{
		Source:   source,
		Pages:    "1",
		Flavor:   "lattice",
		Format:   "csv",
		Output:   output,
		NoRecord: true,
	}
	require.NoError(t, cmd.Run(deps))

	data, err := os.ReadFile(filepath.Join(output, "report", "report-page-1-table-1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Name,Qty\nApples,4\n", string(data))

	// The staging directory is gone once the export is committed.
	_, err = os.Stat(filepath.Join(output, "report.tmp"))
	assert.True(t, os.IsNotExist(err))

	assert.Contains(t, stdout.String(), "1 tables extracted.")
	assert.Contains(t, stdout.String(), filepath.Join("report", "report-page-1-table-1.csv"))
}

func TestExtractCmd_Run_reports_no_tables(t *testing.T) {
	t.Parallel()

	source := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(source, []byte("pdf"), 0644))
	output := t.TempDir()

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:       context.Background(),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Extractor: testExtractor(nil),
	}

	cmd := &ExtractCmd{
		Source:   source,
		Pages:    "1",
		Flavor:   "lattice",
		Format:   "csv",
		Output:   output,
		NoRecord: true,
	}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "No tables found.")
	_, err := os.Stat(filepath.Join(output, "report"))
	assert.True(t, os.IsNotExist(err), "no export directory without tables")
}
