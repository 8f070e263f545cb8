// Package store provides SQLite-backed durable storage for inference
// runs.
//
// Each run records the normalized input word list and the terminal
// outcome (inferred order, or the failure code and message). Stored runs
// back the history, show, and replay CLI commands; replay re-executes
// the engine on the stored words and verifies the outcome matches, which
// doubles as a determinism check on the tie-break policy.
//
// # Critical Patterns
//
// Deterministic reads:
//   - Run words are always read ORDER BY seq ASC
//   - Run listings are ordered by created_at DESC, id ASC
//
// Idempotent writes:
//   - INSERT ... ON CONFLICT DO NOTHING on the run id
//   - Writing the same run twice is a silent no-op
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
