package mock

import (
	"context"

	"github.com/kiyo-matsu/camelot"
)

var _ camelot.TableWriter = (*TableWriter)(nil)

// TableWriter is a mock implementation of camelot.TableWriter.
type TableWriter struct {
	WriteTablesFn func(ctx context.Context, tables camelot.TableList, name string) error
}

func (w *TableWriter) WriteTables(ctx context.Context, tables camelot.TableList, name string) error {
	return w.WriteTablesFn(ctx, tables, name)
}
