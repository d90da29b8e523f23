package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ScratchDir is the scoped temporary directory holding the per-page
// artifacts of one Parse call. It is created on acquisition and removed
// recursively exactly once on release, regardless of how many pages
// succeeded or failed.
type ScratchDir struct {
	path string

	once sync.Once
	err  error
}

// NewScratchDir creates a scratch directory under parent, or under the
// system temporary directory when parent is empty.
func NewScratchDir(parent string) (*ScratchDir, error) {
	path, err := os.MkdirTemp(parent, "camelot-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &ScratchDir{path: path}, nil
}

// Path returns the directory path.
func (d *ScratchDir) Path() string {
	return d.path
}

// PagePath returns the canonical path for the extracted single-page
// document of page n.
func (d *ScratchDir) PagePath(n int) string {
	return filepath.Join(d.path, fmt.Sprintf("page-%d.pdf", n))
}

// Close removes the directory and everything in it. It is safe to call
// multiple times; removal happens once.
func (d *ScratchDir) Close() error {
	d.once.Do(func() {
		d.err = os.RemoveAll(d.path)
	})
	return d.err
}
