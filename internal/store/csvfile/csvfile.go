// Package csvfile implements the expense store over a single local CSV
// file. The layout is the one durable format the tracker must preserve:
// UTF-8, header row "date,amount,category,description", one record per row,
// RFC 4180 quoting, amounts with exactly two decimals, dates YYYY-MM-DD.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"expensetrack/internal/core"
	"expensetrack/internal/store"
)

// Header is the fixed first row of the backing file.
var Header = []string{"date", "amount", "category", "description"}

// Store persists expenses in one CSV file. The file handle is held only for
// the duration of a single read or append; nothing is cached between calls,
// so every ReadAll reflects the file's contents at that instant.
type Store struct {
	path string
}

// New creates a store over the given file path. The file is not touched
// until Initialize or the first operation.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Initialize creates the backing file with the header row if it does not
// exist yet. Calling it on an existing file is a no-op.
func (s *Store) Initialize(ctx context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", store.ErrWrite, s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: create directory %s: %v", store.ErrWrite, dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", store.ErrWrite, s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("%w: write header: %v", store.ErrWrite, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flush header: %v", store.ErrWrite, err)
	}

	slog.InfoContext(ctx, "Expense file initialized", "component", "store", "path", s.path)
	return nil
}

// Append writes exactly one record row to the end of the file. The row is
// either fully written or the append fails; no retry happens here.
func (s *Store) Append(ctx context.Context, e core.Expense) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", store.ErrWrite, s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(encodeRow(e)); err != nil {
		return fmt.Errorf("%w: write row: %v", store.ErrWrite, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flush row: %v", store.ErrWrite, err)
	}

	slog.DebugContext(ctx, "Expense appended",
		"component", "store",
		"date", e.Date.String(),
		"amount_cents", e.Amount.Cents,
		"category", e.Category)
	return nil
}

// ReadAll parses the whole file and returns every well-formed record in
// insertion order. Malformed rows are a designed tolerance, not an error:
// they are skipped and the read continues to end of file. Only lower-level
// I/O failures surface as errors. A missing file yields an empty sequence.
func (s *Store) ReadAll(ctx context.Context) ([]core.Expense, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", store.ErrRead, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field-count errors are handled as row skips

	var (
		records []core.Expense
		skipped int
		first   = true
	)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Quoting errors and the like: skip the row, keep reading.
			if first {
				first = false
			} else {
				skipped++
			}
			continue
		}
		if first {
			// The header row is never data, even when no data follows.
			first = false
			continue
		}
		e, ok := decodeRow(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, e)
	}

	if skipped > 0 {
		slog.DebugContext(ctx, "Skipped malformed rows",
			"component", "store", "path", s.path, "skipped", skipped)
	}
	return records, nil
}

func encodeRow(e core.Expense) []string {
	return []string{
		e.Date.String(),
		e.Amount.String(),
		e.Category,
		e.Description,
	}
}

func decodeRow(row []string) (core.Expense, bool) {
	if len(row) != len(Header) {
		return core.Expense{}, false
	}
	date, err := core.ParseDate(row[0])
	if err != nil {
		return core.Expense{}, false
	}
	amount, err := core.ParseAmount(row[1])
	if err != nil {
		return core.Expense{}, false
	}
	return core.Expense{
		Date:        date,
		Amount:      amount,
		Category:    row[2],
		Description: row[3],
	}, true
}
