package camelot

import (
	"context"
	"strings"
)

// ReadingOrder is the direction in which a glyph is read within its text line.
type ReadingOrder int

const (
	// ReadingUnknown marks glyphs that could not be assigned to a line.
	ReadingUnknown ReadingOrder = iota
	// ReadingLeftToRight marks glyphs on horizontal text lines.
	ReadingLeftToRight
	// ReadingTopToBottom marks glyphs on vertical lines read downward.
	ReadingTopToBottom
	// ReadingBottomToTop marks glyphs on vertical lines read upward.
	ReadingBottomToTop
)

// Glyph is a single positioned character produced by layout analysis.
// Coordinates follow the PDF convention: origin at the bottom-left of the
// page, y increasing upward.
type Glyph struct {
	Text    string
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Reading ReadingOrder
}

// TextLine is a run of glyphs grouped into one horizontal or vertical line.
type TextLine struct {
	Text string
	X0   float64
	Y0   float64
	X1   float64
	Y1   float64
}

// HasText reports whether the line contains non-whitespace content.
func (l TextLine) HasText() bool {
	return strings.TrimSpace(l.Text) != ""
}

// PageLayout is the result of layout analysis on a single-page document.
type PageLayout struct {
	Width      float64
	Height     float64
	Glyphs     []Glyph
	Horizontal []TextLine
	Vertical   []TextLine
}

// LayoutOptions tunes layout analysis. The zero value selects defaults.
type LayoutOptions struct {
	// LineTolerance is the maximum coordinate drift, in points, for glyphs
	// to be grouped into the same text line. Defaults to 2.0.
	LineTolerance float64

	// MinLineGlyphs is the minimum number of glyphs that form a text line.
	// Defaults to 2.
	MinLineGlyphs int
}

// DefaultLineTolerance and DefaultMinLineGlyphs are applied for zero-valued
// LayoutOptions fields.
const (
	DefaultLineTolerance = 2.0
	DefaultMinLineGlyphs = 2
)

// Normalize returns a copy of o with zero-valued fields set to defaults.
func (o LayoutOptions) Normalize() LayoutOptions {
	if o.LineTolerance <= 0 {
		o.LineTolerance = DefaultLineTolerance
	}
	if o.MinLineGlyphs <= 0 {
		o.MinLineGlyphs = DefaultMinLineGlyphs
	}
	return o
}

// Analyzer is the injected text-layout analysis capability. It yields
// positioned glyph and text-line objects for a single-page document; the
// pipeline uses them only for orientation inference and table parsing.
type Analyzer interface {
	Analyze(ctx context.Context, path string, opts LayoutOptions) (*PageLayout, error)
}
