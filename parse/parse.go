// Package parse provides the two table-parser strategies, "lattice" and
// "stream". Both consume the path of a finalized single-page document plus
// a shared options bundle; they differ in how column boundaries are
// inferred from the page's text layout.
package parse

import (
	"sort"
	"strings"

	"github.com/kiyo-matsu/camelot"
)

// Flavor names for the two strategies.
const (
	FlavorLattice = "lattice"
	FlavorStream  = "stream"
)

// Factory returns a parser factory over the given layout analyzer. The
// layout options are forwarded to the analyzer on every page.
func Factory(analyzer camelot.Analyzer, layout camelot.LayoutOptions) func(flavor string, opts camelot.ParserOptions) (camelot.Parser, error) {
	return func(flavor string, opts camelot.ParserOptions) (camelot.Parser, error) {
		switch flavor {
		case FlavorLattice:
			return NewLattice(analyzer, layout, opts), nil
		case FlavorStream:
			return NewStream(analyzer, layout, opts), nil
		default:
			return nil, camelot.Errorf(camelot.EINVALID, "unknown parser flavor %q", flavor)
		}
	}
}

// textRow is one baseline of text fragments, top of page first.
type textRow struct {
	y     float64
	lines []camelot.TextLine
}

// groupRows clusters text lines into baselines whose vertical positions
// agree within tolerance, ordered top to bottom.
func groupRows(lines []camelot.TextLine, tolerance float64) []textRow {
	if len(lines) == 0 {
		return nil
	}
	sorted := make([]camelot.TextLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y0 > sorted[j].Y0 })

	rows := []textRow{{y: sorted[0].Y0, lines: sorted[:1:1]}}
	for _, l := range sorted[1:] {
		last := &rows[len(rows)-1]
		if last.y-l.Y0 <= tolerance {
			last.lines = append(last.lines, l)
			continue
		}
		rows = append(rows, textRow{y: l.Y0, lines: []camelot.TextLine{l}})
	}
	for i := range rows {
		sort.SliceStable(rows[i].lines, func(a, b int) bool {
			return rows[i].lines[a].X0 < rows[i].lines[b].X0
		})
	}
	return rows
}

// interval is one column's horizontal extent.
type interval struct {
	x0, x1 float64
}

func (iv interval) contains(x float64) bool {
	return x >= iv.x0 && x <= iv.x1
}

// assemble builds a table from rows and column intervals. Fragments are
// assigned to the column containing their horizontal center; fragments in
// the same cell are joined with a single space.
func assemble(rows []textRow, columns []interval, page int) *camelot.Table {
	t := &camelot.Table{Page: page}
	t.X0, t.Y0 = columns[0].x0, rows[len(rows)-1].y
	t.X1 = columns[len(columns)-1].x1

	for _, r := range rows {
		cells := make([]string, len(columns))
		for _, l := range r.lines {
			center := (l.X0 + l.X1) / 2
			for c, col := range columns {
				if col.contains(center) {
					if cells[c] != "" {
						cells[c] += " "
					}
					cells[c] += strings.TrimSpace(l.Text)
					break
				}
			}
			if l.Y1 > t.Y1 {
				t.Y1 = l.Y1
			}
			if l.Y0 < t.Y0 {
				t.Y0 = l.Y0
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}
