package mock

import (
	"context"

	"github.com/kiyo-matsu/camelot"
)

var _ camelot.RunService = (*RunService)(nil)

// RunService is a mock implementation of camelot.RunService.
type RunService struct {
	CreateRunFn       func(ctx context.Context, run *camelot.Run) error
	FinishRunFn       func(ctx context.Context, id string, tableCount int) error
	FindRunByIDFn     func(ctx context.Context, id string) (*camelot.Run, error)
	FindRunsFn        func(ctx context.Context, filter camelot.RunFilter) ([]*camelot.Run, error)
	DeleteRunFn       func(ctx context.Context, id string) error
	CreateTablesFn    func(ctx context.Context, runID string, tables camelot.TableList) error
	FindTablesByRunFn func(ctx context.Context, runID string) (camelot.TableList, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *camelot.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FinishRun(ctx context.Context, id string, tableCount int) error {
	return s.FinishRunFn(ctx, id, tableCount)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*camelot.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter camelot.RunFilter) ([]*camelot.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}

func (s *RunService) CreateTables(ctx context.Context, runID string, tables camelot.TableList) error {
	return s.CreateTablesFn(ctx, runID, tables)
}

func (s *RunService) FindTablesByRun(ctx context.Context, runID string) (camelot.TableList, error) {
	return s.FindTablesByRunFn(ctx, runID)
}
