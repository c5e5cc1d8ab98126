// Package report renders aggregate views as plain text for the terminal
// shell. It consumes the core's records and totals and never touches
// storage; a different shell can swap in its own rendering without changing
// the core.
package report

import (
	"fmt"
	"math"
	"strings"

	"expensetrack/internal/core"
)

// RenderListing formats all records as a fixed-width table in stored order.
func RenderListing(records []core.Expense) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %10s %-15s %s\n", "Date", "Amount", "Category", "Description")
	b.WriteString(strings.Repeat("-", 55))
	b.WriteByte('\n')
	for _, e := range core.ListAll(records) {
		fmt.Fprintf(&b, "%-12s %10s %-15s %s\n", e.Date, "$"+e.Amount.String(), e.Category, e.Description)
	}
	return b.String()
}

// RenderMonthlyTotals formats per-month per-category totals. Months appear
// in ascending order; categories within a month keep their first-seen order.
func RenderMonthlyTotals(totals *core.MonthlyTotals) string {
	var b strings.Builder
	b.WriteString("Monthly Totals per Category:\n")
	for _, month := range totals.Months() {
		fmt.Fprintf(&b, "\n%s:\n", month)
		ct := totals.Month(month)
		for _, category := range ct.Categories() {
			amount, _ := ct.Total(category)
			fmt.Fprintf(&b, "  %-15s : $%s\n", category, amount)
		}
	}
	return b.String()
}

// RenderChart draws a horizontal bar chart of category totals for one month,
// with each category's share of the month's total. Bars scale to the widest
// category; width caps the longest bar.
func RenderChart(monthKey string, totals *core.CategoryTotals, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Expenses by Category for %s:\n\n", monthKey)

	var maxAbs float64
	for _, category := range totals.Categories() {
		amount, _ := totals.Total(category)
		if v := math.Abs(amount.Float64()); v > maxAbs {
			maxAbs = v
		}
	}
	grand := totals.GrandTotal().Float64()

	for _, category := range totals.Categories() {
		amount, _ := totals.Total(category)
		bar := barLength(math.Abs(amount.Float64()), maxAbs, width)
		share := 0.0
		if grand != 0 {
			share = amount.Float64() / grand * 100
		}
		fmt.Fprintf(&b, "  %-15s %s $%s (%.1f%%)\n",
			category, strings.Repeat("#", bar), amount, share)
	}
	return b.String()
}

func barLength(value, max float64, width int) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	n := int(math.Round(value / max * float64(width)))
	if n < 1 {
		n = 1
	}
	return n
}
