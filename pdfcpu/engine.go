// Package pdfcpu implements the camelot document-engine capability on top
// of the pdfcpu library.
package pdfcpu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/kiyo-matsu/camelot"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Ensure Engine implements camelot.Engine at compile time.
var _ camelot.Engine = (*Engine)(nil)

// Engine opens PDF documents and rewrites recorded page rotation.
type Engine struct{}

// NewEngine creates a pdfcpu-backed Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Open returns a session for the document at path. The credential is not
// verified here: documents are authenticated lazily, on first content
// access, so an insufficient password surfaces as a content-access failure
// carrying the closed-or-encrypted signal.
func (e *Engine) Open(ctx context.Context, path, password string) (camelot.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &Document{path: path, password: password}, nil
}

// Rotate adds degrees to the recorded rotation of every page of the
// document at path, rewriting the file in place.
func (e *Engine) Rotate(ctx context.Context, path string, degrees int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if degrees%360 == 0 {
		return nil
	}
	return api.RotateFile(path, "", degrees%360, nil, relaxedConf(""))
}

// Ensure Document implements camelot.Document at compile time.
var _ camelot.Document = (*Document)(nil)

// Document is one open session. Encrypted documents are decrypted once into
// a session-scoped working copy on first content access; all reads and page
// copies then run against that copy.
//
// A Document is safe for concurrent use: the lazily materialized session
// state and the parsed context are guarded by a mutex, so one session can be
// shared by parallel per-page workers.
type Document struct {
	path     string
	password string

	mu        sync.Mutex
	workPath  string // decrypted working copy, or path itself when readable
	workDir   string // holds the working copy, "" when none was needed
	pageCount int
	pctx      *model.Context
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.ensure(); err != nil {
		return 0, err
	}
	return d.pageCount, nil
}

// Page returns geometry and recorded rotation for page n (1-based).
func (d *Document) Page(ctx context.Context, n int) (camelot.PageInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.ensure(); err != nil {
		return camelot.PageInfo{}, err
	}
	if n < 1 || n > d.pageCount {
		return camelot.PageInfo{}, fmt.Errorf("page %d out of range [1,%d]", n, d.pageCount)
	}
	if d.pctx == nil {
		pctx, err := api.ReadContextFile(d.workPath)
		if err != nil {
			return camelot.PageInfo{}, err
		}
		d.pctx = pctx
	}
	_, _, inh, err := d.pctx.PageDict(n, false)
	if err != nil {
		return camelot.PageInfo{}, err
	}
	info := camelot.PageInfo{Number: n, Rotation: normalizeRotation(inh.Rotate)}
	if mb := inh.MediaBox; mb != nil {
		info.Width = mb.Width()
		info.Height = mb.Height()
	}
	return info, nil
}

// ExtractPage copies page n into a new single-page document at destPath.
// The copy keeps the source page's canvas but its recorded rotation is
// reset to 0.
func (d *Document) ExtractPage(ctx context.Context, n int, destPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := d.Page(ctx, n)
	if err != nil {
		return err
	}
	d.mu.Lock()
	work := d.workPath
	d.mu.Unlock()
	if err := api.TrimFile(work, destPath, []string{strconv.Itoa(n)}, relaxedConf("")); err != nil {
		return err
	}
	if info.Rotation != 0 {
		// Cancel the inherited rotation so the new document starts at 0.
		if err := api.RotateFile(destPath, "", 360-info.Rotation, nil, relaxedConf("")); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the session and its decrypted working copy, if any.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pctx = nil
	if d.workDir != "" {
		dir := d.workDir
		d.workDir = ""
		return os.RemoveAll(dir)
	}
	return nil
}

// ensure makes the document readable, authenticating once when it reports
// protection. A credential that does not unlock the document yields the
// generic closed-or-encrypted signal. Callers must hold d.mu.
func (d *Document) ensure() error {
	if d.workPath != "" {
		return nil
	}

	n, err := api.PageCountFile(d.path)
	if err == nil {
		d.workPath = d.path
		d.pageCount = n
		return nil
	}
	if !looksEncrypted(err) {
		return err
	}

	dir, derr := os.MkdirTemp("", "camelot-doc-*")
	if derr != nil {
		return derr
	}
	work := filepath.Join(dir, "decrypted.pdf")
	if derr := api.DecryptFile(d.path, work, relaxedConf(d.password)); derr != nil {
		_ = os.RemoveAll(dir)
		return fmt.Errorf("%s: %v", camelot.ClosedOrEncryptedSignal, derr)
	}
	n, err = api.PageCountFile(work)
	if err != nil {
		_ = os.RemoveAll(dir)
		return err
	}
	d.workDir = dir
	d.workPath = work
	d.pageCount = n
	return nil
}

// looksEncrypted reports whether a pdfcpu read failure indicates document
// protection rather than corruption.
func looksEncrypted(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "encrypt") || strings.Contains(msg, "password")
}

// normalizeRotation maps a recorded /Rotate value onto [0,360).
func normalizeRotation(r int) int {
	return ((r % 360) + 360) % 360
}

func relaxedConf(password string) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}
	return conf
}
