// Package store defines the append-only persistence port for expense
// records. Backends live in subpackages: csvfile for the real flat-file
// store, memory for tests and ephemeral use.
package store

import (
	"context"
	"errors"

	"expensetrack/internal/core"
)

// Store is the append-only record store. There is no update or delete:
// correcting an entry means appending a new record.
type Store interface {
	// Initialize prepares the backing store for first use. It is
	// idempotent; calling it against an already-initialized store is a
	// no-op.
	Initialize(ctx context.Context) error

	// Append durably writes exactly one record. The record is either
	// fully written or not saved at all; this layer never retries.
	Append(ctx context.Context, e core.Expense) error

	// ReadAll returns every stored record in insertion order. Rows that
	// fail to parse are skipped, never fatal. A store that was never
	// written returns an empty sequence, not an error.
	ReadAll(ctx context.Context) ([]core.Expense, error)
}

var (
	// ErrWrite wraps I/O failures while appending; the record in
	// question is not considered saved.
	ErrWrite = errors.New("store write error")

	// ErrRead wraps I/O failures while opening or reading the store.
	// Malformed rows are not read errors.
	ErrRead = errors.New("store read error")
)
