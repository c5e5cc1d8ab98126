// Package core holds the domain types, record validation, and aggregation
// logic shared by every presentation shell. Nothing here performs I/O.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in integer cents. All arithmetic happens on
// cents so that summing thousands of records cannot accumulate binary
// floating-point drift; values are only rendered as decimals at presentation
// boundaries.
type Money struct {
	Cents int64
}

// ParseAmount converts a decimal string to Money, half-up rounding anything
// past the second decimal place. Negative amounts are accepted: the tracker
// treats them as refunds or corrections rather than rejecting them.
//
// Examples:
//
//	ParseAmount("12.34")  -> 1234 cents
//	ParseAmount("12.345") -> 1235 cents (rounds up)
//	ParseAmount("-5")     -> -500 cents
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	// Shift into cents before rounding so .Round works on whole cents.
	cents := d.Shift(2).Round(0)
	if !cents.IsInteger() || !cents.BigInt().IsInt64() {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents.IntPart()}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// String renders the amount with exactly two decimal digits, e.g. "12.30"
// or "-0.05". This is the storage and display format.
func (m Money) String() string {
	return decimal.New(m.Cents, -2).StringFixed(2)
}

// Float64 returns the amount as a float for chart proportion math only.
// Use cents for anything that gets summed or compared.
func (m Money) Float64() float64 {
	return float64(m.Cents) / 100.0
}
