package camelot

import (
	"context"
	"strings"
)

// ClosedOrEncryptedSignal is the generic engine-level message emitted when a
// document's content is accessed while it is still locked. The orchestrator
// translates failures carrying this signal into ENOTDECRYPTED; engines and
// test doubles must include it verbatim when reporting that condition.
const ClosedOrEncryptedSignal = "document closed or encrypted"

// IsClosedOrEncrypted reports whether err carries the engine-level
// closed-or-encrypted signal.
func IsClosedOrEncrypted(err error) bool {
	return err != nil && strings.Contains(err.Error(), ClosedOrEncryptedSignal)
}

// PageInfo describes one page of an open document: its canvas geometry in
// points and its recorded rotation in degrees (0, 90, 180 or 270).
type PageInfo struct {
	Number   int
	Width    float64
	Height   float64
	Rotation int
}

// Document is one opened, authenticated source document. Methods that touch
// document content may fail with the closed-or-encrypted signal when the
// credential supplied at open time was insufficient; Open itself never
// reports authentication failure.
//
// A Document is read-only with respect to its underlying file. Every open
// Document must be closed on all exit paths.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount(ctx context.Context) (int, error)

	// Page returns geometry and recorded rotation for page n (1-based).
	Page(ctx context.Context, n int) (PageInfo, error)

	// ExtractPage copies page n into a brand-new single-page document at
	// destPath. The new page keeps the source page's exact width and height
	// but its recorded rotation is reset to 0.
	ExtractPage(ctx context.Context, n int, destPath string) error

	// Close releases the document and any session-scoped resources.
	Close() error
}

// Engine is the injected document-engine capability. It opens documents and
// rewrites recorded page rotation on stored single-page documents.
type Engine interface {
	// Open opens the document at path, attempting authentication with
	// password (empty string when none was given).
	Open(ctx context.Context, path, password string) (Document, error)

	// Rotate adds degrees to the recorded rotation of every page of the
	// document at path, rewriting it in place.
	Rotate(ctx context.Context, path string, degrees int) error
}
