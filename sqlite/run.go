package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/adgen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ adgen.RunService = (*RunService)(nil)

// RunService implements adgen.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

const runColumns = "id, url, services, website_only, model, brief, response, response_hash, created_at"

// CreateRun stores a new run.
func (s *RunService) CreateRun(ctx context.Context, run *adgen.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	services, err := encodeServices(run.Services)
	if err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.ResponseHash = hashContent(run.Response)
	run.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.URL, services, run.WebsiteOnly, run.Model, run.Brief, run.Response,
		run.ResponseHash, run.CreatedAt.Format(timeFormat))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*adgen.Run, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, adgen.Errorf(adgen.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter adgen.RunFilter) ([]*adgen.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + runColumns + " FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*adgen.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run.
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
		return adgen.Errorf(adgen.ENOTFOUND, "run not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*adgen.Run, error) {
	var run adgen.Run
	var services, createdAt string

	if err := sc.Scan(&run.ID, &run.URL, &services, &run.WebsiteOnly, &run.Model, &run.Brief,
		&run.Response, &run.ResponseHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if run.Services, err = decodeServices(services); err != nil {
		return nil, err
	}
	if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &run, nil
}
