// Package ledongthuc implements the camelot layout-analysis capability on
// top of the pure-Go ledongthuc/pdf reader (BSD-3, no CGO).
package ledongthuc

import (
	"context"
	"math"
	"strings"

	"github.com/kiyo-matsu/camelot"
	"github.com/ledongthuc/pdf"
)

// Ensure Analyzer implements camelot.Analyzer at compile time.
var _ camelot.Analyzer = (*Analyzer)(nil)

// Analyzer extracts positioned glyphs from a single-page document and
// groups them into horizontal and vertical text lines.
type Analyzer struct{}

// NewAnalyzer creates a ledongthuc-backed Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze reads the first page of the document at path and returns its
// text layout. A page without any text yields an empty layout, not an
// error.
func (a *Analyzer) Analyze(ctx context.Context, path string, opts camelot.LayoutOptions) (*camelot.PageLayout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	layout := &camelot.PageLayout{}
	if r.NumPage() < 1 {
		return layout, nil
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return layout, nil
	}

	content := page.Content()
	glyphs := make([]camelot.Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		glyphs = append(glyphs, camelot.Glyph{
			Text:   t.S,
			X:      t.X,
			Y:      t.Y,
			Width:  t.W,
			Height: t.FontSize,
		})
	}
	return buildLayout(glyphs, opts), nil
}

// buildLayout groups glyphs, in content-stream order, into horizontal and
// vertical text lines and assigns each grouped glyph its reading order.
// Glyphs are emitted in reading order by the content stream, so a run of
// consecutive glyphs sharing a baseline is a horizontal line and a run
// sharing an x-position is a vertical one. Ungrouped glyphs keep
// ReadingUnknown.
func buildLayout(glyphs []camelot.Glyph, opts camelot.LayoutOptions) *camelot.PageLayout {
	layout := &camelot.PageLayout{}

	i := 0
	for i < len(glyphs) {
		if n := runLength(glyphs[i:], opts.LineTolerance, func(g camelot.Glyph) float64 { return g.Y }); n >= opts.MinLineGlyphs {
			for k := i; k < i+n; k++ {
				glyphs[k].Reading = camelot.ReadingLeftToRight
			}
			layout.Horizontal = append(layout.Horizontal, lineOf(glyphs[i:i+n]))
			i += n
			continue
		}
		if n := runLength(glyphs[i:], opts.LineTolerance, func(g camelot.Glyph) float64 { return g.X }); n >= opts.MinLineGlyphs {
			reading := camelot.ReadingTopToBottom
			if glyphs[i+n-1].Y > glyphs[i].Y {
				reading = camelot.ReadingBottomToTop
			}
			for k := i; k < i+n; k++ {
				glyphs[k].Reading = reading
			}
			layout.Vertical = append(layout.Vertical, lineOf(glyphs[i:i+n]))
			i += n
			continue
		}
		i++
	}

	layout.Glyphs = glyphs
	for _, g := range glyphs {
		layout.Width = math.Max(layout.Width, g.X+g.Width)
		layout.Height = math.Max(layout.Height, g.Y+g.Height)
	}
	return layout
}

// runLength returns the length of the longest prefix of glyphs whose coord
// stays within tolerance of the first glyph's.
func runLength(glyphs []camelot.Glyph, tolerance float64, coord func(camelot.Glyph) float64) int {
	n := 1
	for n < len(glyphs) && math.Abs(coord(glyphs[n])-coord(glyphs[0])) <= tolerance {
		n++
	}
	return n
}

// lineOf builds a text line from a run of glyphs.
func lineOf(glyphs []camelot.Glyph) camelot.TextLine {
	var sb strings.Builder
	line := camelot.TextLine{
		X0: math.Inf(1), Y0: math.Inf(1),
		X1: math.Inf(-1), Y1: math.Inf(-1),
	}
	for _, g := range glyphs {
		sb.WriteString(g.Text)
		line.X0 = math.Min(line.X0, g.X)
		line.Y0 = math.Min(line.Y0, g.Y)
		line.X1 = math.Max(line.X1, g.X+g.Width)
		line.Y1 = math.Max(line.Y1, g.Y+g.Height)
	}
	line.Text = sb.String()
	return line
}
