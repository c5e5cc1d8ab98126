package memory

import (
	"context"
	"testing"

	"expensetrack/internal/core"
)

func TestMemoryStoreAppendAndReadAll(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	records, err := s.ReadAll(ctx)
	if err != nil || len(records) != 0 {
		t.Fatalf("expected empty store, got %d (err=%v)", len(records), err)
	}

	in := []core.Expense{
		{Date: core.NewDate(2024, 1, 15), Amount: core.Money{Cents: 1000}, Category: "Food", Description: "lunch"},
		{Date: core.NewDate(2024, 2, 1), Amount: core.Money{Cents: 300}, Category: "Transport"},
	}
	for _, e := range in {
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err = s.ReadAll(ctx)
	if err != nil || len(records) != 2 {
		t.Fatalf("expected 2 records, got %d (err=%v)", len(records), err)
	}
	for i := range in {
		if records[i] != in[i] {
			t.Fatalf("record %d: expected %+v, got %+v", i, in[i], records[i])
		}
	}

	// The returned slice is a copy.
	records[0].Category = "changed"
	again, _ := s.ReadAll(ctx)
	if again[0].Category != "Food" {
		t.Fatalf("ReadAll leaked internal state")
	}
}
