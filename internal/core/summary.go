package core

import "sort"

// CategoryTotals maps category names to summed amounts while remembering the
// order in which categories were first seen. Reports iterate categories in
// that insertion order rather than alphabetically.
type CategoryTotals struct {
	order  []string
	totals map[string]Money
}

// NewCategoryTotals returns an empty, ready-to-use CategoryTotals.
func NewCategoryTotals() *CategoryTotals {
	return &CategoryTotals{totals: make(map[string]Money)}
}

// Add accumulates amount into the category's running total.
func (ct *CategoryTotals) Add(category string, amount Money) {
	if _, ok := ct.totals[category]; !ok {
		ct.order = append(ct.order, category)
	}
	ct.totals[category] = ct.totals[category].Add(amount)
}

// Categories returns the category names in first-encountered order.
func (ct *CategoryTotals) Categories() []string {
	return append([]string(nil), ct.order...)
}

// Total returns the summed amount for a category.
func (ct *CategoryTotals) Total(category string) (Money, bool) {
	m, ok := ct.totals[category]
	return m, ok
}

// Len returns the number of distinct categories.
func (ct *CategoryTotals) Len() int {
	return len(ct.order)
}

// GrandTotal sums every category.
func (ct *CategoryTotals) GrandTotal() Money {
	var sum Money
	for _, m := range ct.totals {
		sum = sum.Add(m)
	}
	return sum
}

// MonthlyTotals is the two-level grouping month key -> category -> total.
type MonthlyTotals struct {
	byMonth map[string]*CategoryTotals
}

// Months returns the month keys in ascending order. Keys are zero-padded
// YYYY-MM, so lexicographic order is chronological.
func (mt *MonthlyTotals) Months() []string {
	keys := make([]string, 0, len(mt.byMonth))
	for k := range mt.byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Month returns the category totals for one month key, or nil if the month
// has no records.
func (mt *MonthlyTotals) Month(key string) *CategoryTotals {
	return mt.byMonth[key]
}

// Len returns the number of distinct months.
func (mt *MonthlyTotals) Len() int {
	return len(mt.byMonth)
}

// ListAll returns the records in their stored order, for direct display.
// The result is a copy; callers may not mutate the store's view.
func ListAll(records []Expense) []Expense {
	return append([]Expense(nil), records...)
}

// GroupByMonth computes per-month per-category totals over the full record
// set. Summation is plain cent addition, so repeated 2-decimal amounts sum
// exactly.
func GroupByMonth(records []Expense) *MonthlyTotals {
	mt := &MonthlyTotals{byMonth: make(map[string]*CategoryTotals)}
	for _, e := range records {
		key := e.Date.MonthKey()
		ct, ok := mt.byMonth[key]
		if !ok {
			ct = NewCategoryTotals()
			mt.byMonth[key] = ct
		}
		ct.Add(e.Category, e.Amount)
	}
	return mt
}

// TotalsForMonth computes category totals restricted to records in the given
// YYYY-MM month. A month with no records yields an empty result, not an
// error; the caller decides what empty means.
func TotalsForMonth(records []Expense, monthKey string) *CategoryTotals {
	ct := NewCategoryTotals()
	for _, e := range records {
		if e.Date.MonthKey() == monthKey {
			ct.Add(e.Category, e.Amount)
		}
	}
	return ct
}
