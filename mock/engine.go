package mock

import (
	"context"

	"github.com/kiyo-matsu/camelot"
)

var _ camelot.Engine = (*Engine)(nil)

// Engine is a mock implementation of camelot.Engine.
type Engine struct {
	OpenFn   func(ctx context.Context, path, password string) (camelot.Document, error)
	RotateFn func(ctx context.Context, path string, degrees int) error
}

func (e *Engine) Open(ctx context.Context, path, password string) (camelot.Document, error) {
	return e.OpenFn(ctx, path, password)
}

func (e *Engine) Rotate(ctx context.Context, path string, degrees int) error {
	return e.RotateFn(ctx, path, degrees)
}

var _ camelot.Document = (*Document)(nil)

// Document is a mock implementation of camelot.Document.
type Document struct {
	PageCountFn   func(ctx context.Context) (int, error)
	PageFn        func(ctx context.Context, n int) (camelot.PageInfo, error)
	ExtractPageFn func(ctx context.Context, n int, destPath string) error
	CloseFn       func() error
}

func (d *Document) PageCount(ctx context.Context) (int, error) {
	return d.PageCountFn(ctx)
}

func (d *Document) Page(ctx context.Context, n int) (camelot.PageInfo, error) {
	return d.PageFn(ctx, n)
}

func (d *Document) ExtractPage(ctx context.Context, n int, destPath string) error {
	return d.ExtractPageFn(ctx, n, destPath)
}

func (d *Document) Close() error {
	if d.CloseFn == nil {
		return nil
	}
	return d.CloseFn()
}
