package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kiyo-matsu/camelot"
)

// RotationState tracks the orientation-correction lifecycle of an extracted
// page. Correction runs at most once; StateNone and StateCorrected are
// terminal.
type RotationState int

const (
	// StateUnknown means layout analysis has not run yet.
	StateUnknown RotationState = iota
	// StateNone means the page reads horizontally and was left as extracted.
	StateNone
	// StateCorrected means the page was rewritten with corrected rotation.
	StateCorrected
)

// ExtractedPage is one single-page document produced from the source. Path
// is its canonical storage location, updated in place when rotation
// correction rewrites the document.
type ExtractedPage struct {
	Number   int
	Path     string
	Width    float64
	Height   float64
	Rotation int
	State    RotationState
}

// correctRotation decides from observed text geometry whether the extracted
// page is actually rotated and, if so, rewrites it with the corrected
// recorded rotation.
//
// The uncorrected document is parked at a distinguishing path, re-opened,
// and copied into a fresh single-page document with the same canvas at the
// canonical path; that copy then receives recorded rotation
// (r+90) mod 360 for anticlockwise or (r+270) mod 360 for clockwise, where
// r is the page's rotation at the time of correction.
func (e *Extractor) correctRotation(ctx context.Context, page *ExtractedPage, opts camelot.LayoutOptions) error {
	layout, err := e.Analyzer.Analyze(ctx, page.Path, opts)
	if err != nil {
		return err
	}

	decision := camelot.DetectRotation(layout.Glyphs, layout.Horizontal, layout.Vertical)
	if decision == camelot.RotationNone {
		page.State = StateNone
		return nil
	}

	e.log().DebugContext(ctx, "rotation detected",
		"page", page.Number, "direction", decision.String())

	rotated := filepath.Join(filepath.Dir(page.Path), fmt.Sprintf("p-%d_rotated.pdf", page.Number))
	if err := os.Rename(page.Path, rotated); err != nil {
		return err
	}

	doc, err := e.Engine.Open(ctx, rotated, "")
	if err != nil {
		return err
	}
	defer doc.Close()

	info, err := doc.Page(ctx, 1)
	if err != nil {
		return err
	}
	if err := doc.ExtractPage(ctx, 1, page.Path); err != nil {
		return err
	}

	target := (info.Rotation + decision.Offset()) % 360
	if err := e.Engine.Rotate(ctx, page.Path, target); err != nil {
		return err
	}

	page.Rotation = target
	page.State = StateCorrected
	return nil
}

func remove(path string) {
	_ = os.Remove(path)
}
