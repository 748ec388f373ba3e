package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/ganttviz/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database. The full schedule
// is stored as a JSON payload alongside the queryable metadata columns.
type SQLiteRunRepo struct {
	db *sql.DB
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(db *sql.DB) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: db}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.Run) error {
	payload, err := json.Marshal(run.Schedule)
	if err != nil {
		return fmt.Errorf("encoding schedule payload: %w", err)
	}

	query := `INSERT INTO runs (id, title, source, makespan, priority_cost, task_count, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		run.ID,
		run.Title,
		string(run.Source),
		run.Makespan,
		run.PriorityCost,
		run.TaskCount,
		string(payload),
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	query := `SELECT id, title, source, makespan, priority_cost, task_count, payload, created_at
		FROM runs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanRun(row)
}

func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Run, error) {
	query := `SELECT id, title, source, makespan, priority_cost, task_count, payload, created_at
		FROM runs ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent runs: %w", err)
	}
	defer rows.Close()
	return r.scanRuns(rows)
}

func (r *SQLiteRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanRun scans a single run from a *sql.Row.
func (r *SQLiteRunRepo) scanRun(row *sql.Row) (*domain.Run, error) {
	var run domain.Run
	var source, payload, createdAtStr string

	err := row.Scan(
		&run.ID, &run.Title, &source, &run.Makespan, &run.PriorityCost, &run.TaskCount, &payload, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	return r.populateRun(&run, source, payload, createdAtStr)
}

// scanRuns scans multiple runs from *sql.Rows.
func (r *SQLiteRunRepo) scanRuns(rows *sql.Rows) ([]*domain.Run, error) {
	var runs []*domain.Run
	for rows.Next() {
		var run domain.Run
		var source, payload, createdAtStr string

		err := rows.Scan(
			&run.ID, &run.Title, &source, &run.Makespan, &run.PriorityCost, &run.TaskCount, &payload, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}

		populated, parseErr := r.populateRun(&run, source, payload, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		runs = append(runs, populated)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// populateRun fills in parsed fields on a Run after scanning raw strings.
func (r *SQLiteRunRepo) populateRun(run *domain.Run, source, payload, createdAtStr string) (*domain.Run, error) {
	run.Source = domain.RunSource(source)

	var s domain.Schedule
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, fmt.Errorf("decoding schedule payload: %w", err)
	}
	run.Schedule = &s

	var parseErr error
	run.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return run, nil
}
