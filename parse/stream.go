package parse

import (
	"context"
	"sort"

	"github.com/kiyo-matsu/camelot"
)

// Ensure Stream implements camelot.Parser at compile time.
var _ camelot.Parser = (*Stream)(nil)

// Stream infers table structure from whitespace between aligned text
// fragments. It suits tables drawn without ruling lines, where columns are
// separated by consistent gaps.
type Stream struct {
	analyzer camelot.Analyzer
	layout   camelot.LayoutOptions
	opts     camelot.ParserOptions
}

// NewStream creates a stream-strategy parser.
func NewStream(analyzer camelot.Analyzer, layout camelot.LayoutOptions, opts camelot.ParserOptions) *Stream {
	return &Stream{analyzer: analyzer, layout: layout, opts: opts.Normalize()}
}

// ExtractTables parses the single-page document at pagePath.
func (s *Stream) ExtractTables(ctx context.Context, pagePath string, pageNumber int) (camelot.TableList, error) {
	layout, err := s.analyzer.Analyze(ctx, pagePath, s.layout)
	if err != nil {
		return nil, err
	}

	rows := groupRows(layout.Horizontal, s.opts.RowTolerance)
	if len(rows) < s.opts.MinRows {
		return nil, nil
	}

	columns := whitespaceColumns(layout.Horizontal, s.opts.ColumnGap)
	if len(columns) < s.opts.MinCols {
		return nil, nil
	}

	return camelot.TableList{assemble(rows, columns, pageNumber)}, nil
}

// whitespaceColumns merges the horizontal extents of all text fragments and
// treats any remaining gap of at least minGap points as a column separator.
func whitespaceColumns(lines []camelot.TextLine, minGap float64) []interval {
	if len(lines) == 0 {
		return nil
	}
	spans := make([]interval, 0, len(lines))
	for _, l := range lines {
		spans = append(spans, interval{l.X0, l.X1})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].x0 < spans[j].x0 })

	columns := []interval{spans[0]}
	for _, s := range spans[1:] {
		last := &columns[len(columns)-1]
		if s.x0-last.x1 < minGap {
			if s.x1 > last.x1 {
				last.x1 = s.x1
			}
			continue
		}
		columns = append(columns, s)
	}
	return columns
}
