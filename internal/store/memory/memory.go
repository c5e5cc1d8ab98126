// Package memory implements the expense store in process memory. It backs
// tests and the ephemeral backend; nothing survives the process.
package memory

import (
	"context"
	"sync"

	"expensetrack/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.Expense
}

func New() *Store {
	return &Store{}
}

// Initialize is a no-op; an empty slice needs no setup.
func (s *Store) Initialize(_ context.Context) error {
	return nil
}

// Append stores the record in insertion order.
func (s *Store) Append(_ context.Context, e core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return nil
}

// ReadAll returns a copy of the stored records.
func (s *Store) ReadAll(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...), nil
}
