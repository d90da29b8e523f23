package mock

import (
	"context"

	"github.com/kiyo-matsu/camelot"
)

var _ camelot.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of camelot.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, path string, opts camelot.LayoutOptions) (*camelot.PageLayout, error)
}

func (a *Analyzer) Analyze(ctx context.Context, path string, opts camelot.LayoutOptions) (*camelot.PageLayout, error) {
	return a.AnalyzeFn(ctx, path, opts)
}
