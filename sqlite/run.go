package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kiyo-matsu/camelot"
)

// Compile-time interface verification.
var _ camelot.RunService = (*RunService)(nil)

// RunService implements camelot.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run record. Sets ID and StartedAt.
func (s *RunService) CreateRun(ctx context.Context, run *camelot.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, fingerprint, flavor, pages, table_count, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, run.Fingerprint, run.Flavor, run.Pages, run.TableCount,
		run.StartedAt.Format(time.RFC3339))

	return err
}

// FinishRun marks a run complete with its final table count.
func (s *RunService) FinishRun(ctx context.Context, id string, tableCount int) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE runs SET table_count = ?, finished_at = ? WHERE id = ?
	`, tableCount, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return camelot.Errorf(camelot.ENOTFOUND, "run not found")
	}

	return nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*camelot.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source, fingerprint, flavor, pages, table_count, started_at, finished_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, camelot.Errorf(camelot.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	return run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter camelot.RunFilter) ([]*camelot.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, fingerprint, flavor, pages, table_count, started_at, finished_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.Flavor != nil {
		query.WriteString(" AND flavor = ?")
		args = append(args, *filter.Flavor)
	}

	query.WriteString(" ORDER BY started_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*camelot.Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// DeleteRun removes a run and its tables.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return camelot.Errorf(camelot.ENOTFOUND, "run not found")
	}

	return nil
}

// CreateTables persists the tables extracted by a run.
// Cell rows are stored as JSON.
func (s *RunService) CreateTables(ctx context.Context, runID string, tables camelot.TableList) error {
	for _, t := range tables {
		cells, err := json.Marshal(t.Rows)
		if err != nil {
			return err
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO tables (run_id, page, ord, rows, x0, y0, x1, y1)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, t.Page, t.Order, string(cells), t.X0, t.Y0, t.X1, t.Y1)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindTablesByRun retrieves a run's tables in document order.
func (s *RunService) FindTablesByRun(ctx context.Context, runID string) (camelot.TableList, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT page, ord, rows, x0, y0, x1, y1
		FROM tables
		WHERE run_id = ?
		ORDER BY page ASC, ord ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables camelot.TableList
	for rows.Next() {
		var t camelot.Table
		var cells string

		if err := rows.Scan(&t.Page, &t.Order, &cells, &t.X0, &t.Y0, &t.X1, &t.Y1); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(cells), &t.Rows); err != nil {
			return nil, fmt.Errorf("failed to decode table rows: %w", err)
		}

		tables = append(tables, &t)
	}

	return tables, rows.Err()
}

// parseRFC3339 parses an RFC3339 timestamp, naming the column on failure.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses for positive values.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

func scanRun(scan func(dest ...any) error) (*camelot.Run, error) {
	var run camelot.Run
	var startedAt, finishedAt string

	if err := scan(&run.ID, &run.Source, &run.Fingerprint, &run.Flavor, &run.Pages,
		&run.TableCount, &startedAt, &finishedAt); err != nil {
		return nil, err
	}

	var err error
	run.StartedAt, err = parseRFC3339(startedAt, "started_at")
	if err != nil {
		return nil, err
	}
	if finishedAt != "" {
		run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at")
		if err != nil {
			return nil, err
		}
	}

	return &run, nil
}
