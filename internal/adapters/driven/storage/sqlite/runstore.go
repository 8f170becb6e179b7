package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
)

// Ensure runStore implements the interface.
var _ driven.RunStore = (*runStore)(nil)

const runColumns = `id, input_path, output_path, format, extractor, encoding,
	raw_lines, cleaned_lines, status, error, advisories, started_at, duration_ms`

// runStore implements driven.RunStore.
type runStore struct {
	db *sql.DB
}

// Save stores or replaces a run.
func (s *runStore) Save(ctx context.Context, run domain.Run) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	advisories, err := json.Marshal(nonNil(run.Advisories))
	if err != nil {
		return fmt.Errorf("marshalling advisories: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.InputPath,
		run.OutputPath,
		string(run.Format),
		run.Extractor,
		run.Encoding,
		run.RawLines,
		run.CleanedLines,
		string(run.Status),
		run.Error,
		string(advisories),
		run.StartedAt.UnixNano(),
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return run, nil
}

// List returns runs newest first.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.Run, error) {
	// SQLite treats a negative LIMIT as no limit.
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Clear removes every run.
func (s *runStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("clearing runs: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*domain.Run, error) {
	var (
		run        domain.Run
		format     string
		status     string
		advisories string
		startedAt  int64
		durationMS int64
	)
	err := sc.Scan(
		&run.ID,
		&run.InputPath,
		&run.OutputPath,
		&format,
		&run.Extractor,
		&run.Encoding,
		&run.RawLines,
		&run.CleanedLines,
		&status,
		&run.Error,
		&advisories,
		&startedAt,
		&durationMS,
	)
	if err != nil {
		return nil, err
	}

	run.Format = domain.Format(format)
	run.Status = domain.RunStatus(status)
	run.StartedAt = time.Unix(0, startedAt)
	run.Duration = time.Duration(durationMS) * time.Millisecond
	if err := json.Unmarshal([]byte(advisories), &run.Advisories); err != nil {
		return nil, fmt.Errorf("decoding advisories: %w", err)
	}
	if len(run.Advisories) == 0 {
		run.Advisories = nil
	}
	return &run, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
