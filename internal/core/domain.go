package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical on-disk and on-screen date format.
	DateLayout = "2006-01-02"
	// MonthLayout identifies a calendar month for grouping and filtering.
	MonthLayout = "2006-01"
)

type (
	// Date is a calendar date at day granularity. The time component is
	// always midnight UTC.
	Date struct {
		time.Time
	}

	// Expense is one recorded transaction. Records are never mutated after
	// creation; corrections are new records.
	Expense struct {
		Date        Date
		Amount      Money
		Category    string
		Description string
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("empty category")
	ErrInvalidMonth    = errors.New("invalid month")
)

// ParseDate parses a YYYY-MM-DD string into a Date. Impossible calendar
// dates (2024-02-30, month 13) are rejected, not normalized.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// String renders the date in YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MonthKey returns the YYYY-MM grouping key for the date's month.
func (d Date) MonthKey() string {
	return d.Format(MonthLayout)
}

// ParseMonthKey validates a YYYY-MM month key as supplied by a shell for
// chart or report scoping.
func ParseMonthKey(s string) (string, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidMonth
	}
	return t.Format(MonthLayout), nil
}

// ParseRecord validates the four raw field strings of one expense entry and
// assembles them into an Expense. It is a pure transformation: no storage is
// touched and no input is mutated.
//
// The date must be a real calendar date in YYYY-MM-DD form, the amount any
// parseable decimal (negative values are accepted; see ParseAmount), and the
// category non-empty after trimming. The description is trimmed and may be
// empty.
func ParseRecord(rawDate, rawAmount, rawCategory, rawDescription string) (Expense, error) {
	date, err := ParseDate(rawDate)
	if err != nil {
		return Expense{}, err
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return Expense{}, err
	}
	category := strings.TrimSpace(rawCategory)
	if category == "" {
		return Expense{}, ErrInvalidCategory
	}
	return Expense{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: strings.TrimSpace(rawDescription),
	}, nil
}
