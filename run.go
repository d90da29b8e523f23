package camelot

import (
	"context"
	"time"
)

// Run records a single extraction run against one document.
type Run struct {
	ID          string
	Source      string
	Fingerprint string
	Flavor      string
	Pages       string
	TableCount  int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "run source required")
	}
	if r.Flavor == "" {
		return Errorf(EINVALID, "run flavor required")
	}
	return nil
}

// RunFilter represents a filter used by FindRuns.
type RunFilter struct {
	ID     *string
	Source *string
	Flavor *string

	Limit  int
	Offset int
}

// RunService manages persisted extraction runs and their tables.
type RunService interface {
	// CreateRun creates a new run record. Sets ID and StartedAt.
	CreateRun(ctx context.Context, run *Run) error

	// FinishRun marks a run complete with its final table count.
	FinishRun(ctx context.Context, id string, tableCount int) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun removes a run and its tables.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error

	// CreateTables persists the tables extracted by a run.
	CreateTables(ctx context.Context, runID string, tables TableList) error

	// FindTablesByRun retrieves a run's tables in document order.
	FindTablesByRun(ctx context.Context, runID string) (TableList, error)
}
