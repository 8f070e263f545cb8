package store

import (
	"context"
	"fmt"
	"time"
)

// WriteRun inserts a run and its words into the store in one
// transaction. Uses ON CONFLICT(id) DO NOTHING for idempotency -
// writing the same run twice is silently ignored. Other constraint
// violations (e.g., NOT NULL) still return errors.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, created_at, word_count, symbol_count, status, ordering, error_code, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.WordCount,
		run.SymbolCount,
		run.Status,
		run.Ordering,
		run.ErrorCode,
		run.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	// Duplicate run id: nothing inserted, skip the words too.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return tx.Commit()
	}

	for seq, word := range run.Words {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_words (run_id, seq, word)
			VALUES (?, ?, ?)
			ON CONFLICT(run_id, seq) DO NOTHING
		`, run.ID, seq, word)
		if err != nil {
			return fmt.Errorf("write run word %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}
