package camelot

import (
	"context"
	"sort"
)

// Table is one extracted table. Rows hold cell text row by row, top to
// bottom. Page is the 1-based source page number; Order is the table's
// position on its page (assigned after sorting, starting at 1). The
// bounding coordinates locate the table on the page canvas.
type Table struct {
	Page  int
	Order int
	Rows  [][]string

	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// Shape returns the table's row and column counts.
func (t *Table) Shape() (rows, cols int) {
	rows = len(t.Rows)
	if rows > 0 {
		cols = len(t.Rows[0])
	}
	return rows, cols
}

// TableList is an ordered collection of extracted tables.
type TableList []*Table

// Sort orders the list by page number, then by position on the page (top to
// bottom, then left to right), and assigns per-page Order values starting
// at 1. The resulting order is a total order over result identity,
// independent of the order pages were processed.
func (tl TableList) Sort() {
	sort.SliceStable(tl, func(i, j int) bool {
		a, b := tl[i], tl[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Y1 != b.Y1 {
			return a.Y1 > b.Y1 // higher on the page first
		}
		return a.X0 < b.X0
	})
	page, order := 0, 0
	for _, t := range tl {
		if t.Page != page {
			page, order = t.Page, 0
		}
		order++
		t.Order = order
	}
}

// ParserOptions is the shared options bundle forwarded verbatim to the
// selected parser strategy. The zero value selects defaults.
type ParserOptions struct {
	// RowTolerance is the vertical drift, in points, within which glyph
	// rows are merged. Defaults to 2.0.
	RowTolerance float64

	// ColumnTolerance is the horizontal drift, in points, within which
	// column edges are considered aligned. Defaults to 2.0.
	ColumnTolerance float64

	// ColumnGap is the minimum horizontal whitespace, in points, that
	// separates two columns for the stream strategy. Defaults to 6.0.
	ColumnGap float64

	// MinRows and MinCols reject degenerate detections. Default to 2 each.
	MinRows int
	MinCols int
}

// Defaults applied for zero-valued ParserOptions fields.
const (
	DefaultRowTolerance    = 2.0
	DefaultColumnTolerance = 2.0
	DefaultColumnGap       = 6.0
	DefaultMinRows         = 2
	DefaultMinCols         = 2
)

// Normalize returns a copy of o with zero-valued fields set to defaults.
func (o ParserOptions) Normalize() ParserOptions {
	if o.RowTolerance <= 0 {
		o.RowTolerance = DefaultRowTolerance
	}
	if o.ColumnTolerance <= 0 {
		o.ColumnTolerance = DefaultColumnTolerance
	}
	if o.ColumnGap <= 0 {
		o.ColumnGap = DefaultColumnGap
	}
	if o.MinRows <= 0 {
		o.MinRows = DefaultMinRows
	}
	if o.MinCols <= 0 {
		o.MinCols = DefaultMinCols
	}
	return o
}

// Parser is one table-extraction strategy. It consumes the path of a
// finalized single-page document and returns the tables found on it, with
// Page set to pageNumber on every result.
type Parser interface {
	ExtractTables(ctx context.Context, pagePath string, pageNumber int) (TableList, error)
}
