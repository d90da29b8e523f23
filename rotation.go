package camelot

// Rotation is the inferred orientation correction for an extracted page,
// relative to its recorded rotation.
type Rotation int

const (
	// RotationNone means the page reads horizontally; no correction.
	RotationNone Rotation = iota
	// RotationClockwise means the page content is rotated 90 degrees
	// clockwise; correcting it adds 270 to the recorded rotation.
	RotationClockwise
	// RotationAnticlockwise means the page content is rotated 90 degrees
	// anticlockwise; correcting it adds 90 to the recorded rotation.
	RotationAnticlockwise
)

// String returns "none", "clockwise" or "anticlockwise".
func (r Rotation) String() string {
	switch r {
	case RotationClockwise:
		return "clockwise"
	case RotationAnticlockwise:
		return "anticlockwise"
	default:
		return "none"
	}
}

// Offset returns the degrees to add to the page's recorded rotation to
// correct the detected misorientation.
func (r Rotation) Offset() int {
	switch r {
	case RotationClockwise:
		return 270
	case RotationAnticlockwise:
		return 90
	default:
		return 0
	}
}

// DetectRotation classifies a page's true orientation from layout-analysis
// output. It is a pure function of the text objects so it can be exercised
// with synthetic fixtures, independent of document rendering.
//
// A page is considered rotated only when it has vertical text lines with
// content and no horizontal ones: the presence of any non-whitespace
// horizontal text takes precedence and yields RotationNone. For a rotated
// page the two 90-degree directions are disambiguated by the majority
// reading order of the glyphs along the vertical lines: text reading
// top-to-bottom was rotated anticlockwise, bottom-to-top clockwise. A tie
// resolves to clockwise.
func DetectRotation(glyphs []Glyph, horizontal, vertical []TextLine) Rotation {
	if countWithText(vertical) == 0 || countWithText(horizontal) > 0 {
		return RotationNone
	}

	var down, up int
	for _, g := range glyphs {
		switch g.Reading {
		case ReadingTopToBottom:
			down++
		case ReadingBottomToTop:
			up++
		}
	}
	if down > up {
		return RotationAnticlockwise
	}
	return RotationClockwise
}

func countWithText(lines []TextLine) int {
	n := 0
	for _, l := range lines {
		if l.HasText() {
			n++
		}
	}
	return n
}
