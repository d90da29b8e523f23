package sqlite_test

import (
	"context"
	"testing"

	"github.com/kiyo-matsu/camelot"
	"github.com/kiyo-matsu/camelot/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustOpenDB returns a new open in-memory database closed on test cleanup.
func MustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and start time", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRunService(MustOpenDB(t))

		run := &camelot.Run{Source: "report.pdf", Flavor: "lattice", Pages: "1"}
		require.NoError(t, s.CreateRun(context.Background(), run))

		assert.NotEmpty(t, run.ID)
		assert.False(t, run.StartedAt.IsZero())

		got, err := s.FindRunByID(context.Background(), run.ID)
		require.NoError(t, err)
		assert.Equal(t, "report.pdf", got.Source)
		assert.Equal(t, "lattice", got.Flavor)
		assert.True(t, got.FinishedAt.IsZero())
	})

	t.Run("rejects runs without source", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRunService(MustOpenDB(t))

		err := s.CreateRun(context.Background(), &camelot.Run{Flavor: "lattice"})
		require.Error(t, err)
		assert.Equal(t, camelot.EINVALID, camelot.ErrorCode(err))
	})

	t.Run("rejects runs without flavor", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRunService(MustOpenDB(t))

		err := s.CreateRun(context.Background(), &camelot.Run{Source: "report.pdf"})
		require.Error(t, err)
		assert.Equal(t, camelot.EINVALID, camelot.ErrorCode(err))
	})
}

func TestRunService_FinishRun(t *testing.T) {
	t.Parallel()

	t.Run("records table count and finish time", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRunService(MustOpenDB(t))
		ctx := context.Background()

		run := &camelot.Run{Source: "report.pdf", Flavor: "stream"}
		require.NoError(t, s.CreateRun(ctx, run))
		require.NoError(t, s.FinishRun(ctx, run.ID, 3))

		got, err := s.FindRunByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TableCount)
		assert.False(t, got.FinishedAt.IsZero())
	})

	t.Run("returns ENOTFOUND for unknown run", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRunService(MustOpenDB(t))

		err := s.FinishRun(context.Background(), "nope", 1)
		require.Error(t, err)
		assert.Equal(t, camelot.ENOTFOUND, camelot.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	s := sqlite.NewRunService(MustOpenDB(t))
	ctx := context.Background()

	require.NoError(t, s.CreateRun(ctx, &camelot.Run{Source: "a.pdf", Flavor: "lattice"}))
	require.NoError(t, s.CreateRun(ctx, &camelot.Run{Source: "b.pdf", Flavor: "stream"}))
	require.NoError(t, s.CreateRun(ctx, &camelot.Run{Source: "a.pdf", Flavor: "stream"}))

	t.Run("no filter returns all", func(t *testing.T) {
		runs, err := s.FindRuns(ctx, camelot.RunFilter{})
		require.NoError(t, err)
		assert.Len(t, runs, 3)
	})

	t.Run("filters by source", func(t *testing.T) {
		source := "a.pdf"
		runs, err := s.FindRuns(ctx, camelot.RunFilter{Source: &source})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})

	t.Run("filters by flavor", func(t *testing.T) {
		flavor := "lattice"
		runs, err := s.FindRuns(ctx, camelot.RunFilter{Flavor: &flavor})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "a.pdf", runs[0].Source)
	})

	t.Run("applies limit", func(t *testing.T) {
		runs, err := s.FindRuns(ctx, camelot.RunFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})

	t.Run("applies offset", func(t *testing.T) {
		runs, err := s.FindRuns(ctx, camelot.RunFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})
}

func TestRunService_DeleteRun(t *testing.T) {
	t.Parallel()

	t.Run("removes the run and its tables", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRunService(MustOpenDB(t))
		ctx := context.Background()

		run := &camelot.Run{Source: "a.pdf", Flavor: "lattice"}
		require.NoError(t, s.CreateRun(ctx, run))
		require.NoError(t, s.CreateTables(ctx, run.ID, camelot.TableList{
			{Page: 1, Order: 1, Rows: [][]string{{"x"}}},
		}))

		require.NoError(t, s.DeleteRun(ctx, run.ID))

		_, err := s.FindRunByID(ctx, run.ID)
		assert.Equal(t, camelot.ENOTFOUND, camelot.ErrorCode(err))

		tables, err := s.FindTablesByRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Empty(t, tables)
	})

	t.Run("returns ENOTFOUND for unknown run", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRunService(MustOpenDB(t))

		err := s.DeleteRun(context.Background(), "nope")
		require.Error(t, err)
		assert.Equal(t, camelot.ENOTFOUND, camelot.ErrorCode(err))
	})
}

func TestRunService_tables_round_trip(t *testing.T) {
	t.Parallel()

	s := sqlite.NewRunService(MustOpenDB(t))
	ctx := context.Background()

	run := &camelot.Run{Source: "a.pdf", Flavor: "lattice"}
	require.NoError(t, s.CreateRun(ctx, run))

	want := camelot.TableList{
		{Page: 2, Order: 1, Rows: [][]string{{"c", "d"}}, X0: 10, Y0: 20, X1: 30, Y1: 40},
		{Page: 1, Order: 1, Rows: [][]string{{"a", "b"}, {"e", "f"}}},
	}
	require.NoError(t, s.CreateTables(ctx, run.ID, want))

	got, err := s.FindTablesByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Retrieval is in document order: page, then position on the page.
	assert.Equal(t, 1, got[0].Page)
	assert.Equal(t, [][]string{{"a", "b"}, {"e", "f"}}, got[0].Rows)
	assert.Equal(t, 2, got[1].Page)
	assert.Equal(t, 10.0, got[1].X0)
	assert.Equal(t, 40.0, got[1].Y1)
}
