package parse

import (
	"context"
	"sort"

	"github.com/kiyo-matsu/camelot"
)

// Ensure Lattice implements camelot.Parser at compile time.
var _ camelot.Parser = (*Lattice)(nil)

// Lattice infers table structure from grid regularity: column boundaries
// are the left edges that repeat across enough rows. It suits ruled tables,
// where cell content is anchored to a drawn grid.
type Lattice struct {
	analyzer camelot.Analyzer
	layout   camelot.LayoutOptions
	opts     camelot.ParserOptions
}

// NewLattice creates a lattice-strategy parser.
func NewLattice(analyzer camelot.Analyzer, layout camelot.LayoutOptions, opts camelot.ParserOptions) *Lattice {
	return &Lattice{analyzer: analyzer, layout: layout, opts: opts.Normalize()}
}

// ExtractTables parses the single-page document at pagePath.
func (l *Lattice) ExtractTables(ctx context.Context, pagePath string, pageNumber int) (camelot.TableList, error) {
	layout, err := l.analyzer.Analyze(ctx, pagePath, l.layout)
	if err != nil {
		return nil, err
	}

	rows := groupRows(layout.Horizontal, l.opts.RowTolerance)
	if len(rows) < l.opts.MinRows {
		return nil, nil
	}

	columns := alignedColumns(rows, l.opts.ColumnTolerance, l.opts.MinRows)
	if len(columns) < l.opts.MinCols {
		return nil, nil
	}

	return camelot.TableList{assemble(rows, columns, pageNumber)}, nil
}

// alignedColumns derives column boundaries from left edges that recur, within
// tolerance, in at least minRows distinct rows. Each boundary opens a column
// that extends to the next boundary; the last column extends to the
// rightmost fragment edge.
func alignedColumns(rows []textRow, tolerance float64, minRows int) []interval {
	type edge struct {
		x     float64
		count int
	}
	var edges []edge
	maxX := 0.0

	for _, r := range rows {
		for _, l := range r.lines {
			if l.X1 > maxX {
				maxX = l.X1
			}
			found := false
			for i := range edges {
				if l.X0 >= edges[i].x-tolerance && l.X0 <= edges[i].x+tolerance {
					edges[i].count++
					found = true
					break
				}
			}
			if !found {
				edges = append(edges, edge{x: l.X0, count: 1})
			}
		}
	}

	var xs []float64
	for _, e := range edges {
		if e.count >= minRows {
			xs = append(xs, e.x)
		}
	}
	if len(xs) == 0 {
		return nil
	}
	sort.Float64s(xs)

	columns := make([]interval, len(xs))
	for i, x := range xs {
		end := maxX
		if i+1 < len(xs) {
			end = xs[i+1]
		}
		columns[i] = interval{x0: x - tolerance, x1: end}
	}
	return columns
}
