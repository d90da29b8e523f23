package camelot

import "context"

// TableWriter persists extracted tables.
type TableWriter interface {
	// WriteTables writes every table in the list under the given base name.
	WriteTables(ctx context.Context, tables TableList, name string) error
}
