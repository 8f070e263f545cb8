package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned when no run exists for the requested id.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns a single run with its words. Words are read
// ORDER BY seq ASC so replay sees the exact input order.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var (
		run       Run
		createdAt string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, word_count, symbol_count, status, ordering, error_code, error_message
		FROM runs
		WHERE id = ?
	`, id).Scan(
		&run.ID,
		&createdAt,
		&run.WordCount,
		&run.SymbolCount,
		&run.Status,
		&run.Ordering,
		&run.ErrorCode,
		&run.ErrorMessage,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}

	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: parse created_at: %w", id, err)
	}

	run.Words, err = s.readRunWords(ctx, id)
	if err != nil {
		return Run{}, err
	}

	return run, nil
}

// readRunWords returns the words of a run in input order.
func (s *Store) readRunWords(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT word
		FROM run_words
		WHERE run_id = ?
		ORDER BY seq ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query run words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan run word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run words: %w", err)
	}

	// Return empty slice instead of nil
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// ListRuns returns runs without their words, newest first. Ties on
// created_at are broken by id for deterministic listings. limit <= 0
// means no limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, created_at, word_count, symbol_count, status, ordering, error_code, error_message
		FROM runs
		ORDER BY created_at DESC, id ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			createdAt string
		)
		err := rows.Scan(
			&run.ID,
			&createdAt,
			&run.WordCount,
			&run.SymbolCount,
			&run.Status,
			&run.Ordering,
			&run.ErrorCode,
			&run.ErrorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	if runs == nil {
		runs = []Run{}
	}
	return runs, nil
}
