package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"expensetrack/internal/cli"
	"expensetrack/internal/core"
	"expensetrack/internal/report"
	"expensetrack/internal/store"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	if level, err := cfg.SlogLevel(); err == nil {
		logger = cli.SetupLogger(level)
	}

	ctx := context.Background()
	st := cli.InitStore(ctx, logger, cfg)
	logger.Info("Expense tracker started", "backend", cfg.DataBackend, "path", cfg.CSVPath)

	app := &app{
		store:      st,
		chartWidth: cfg.ChartWidth,
		in:         bufio.NewScanner(os.Stdin),
		out:        os.Stdout,
	}
	app.run(ctx)
}

// app is the interactive menu shell. It owns no expense logic: every entry
// goes through core validation and the store, every report through the
// aggregator. Failures are shown to the user and the loop continues.
type app struct {
	store      store.Store
	chartWidth int
	in         *bufio.Scanner
	out        io.Writer
}

func (a *app) run(ctx context.Context) {
	for {
		fmt.Fprint(a.out, "\nExpense Tracker Menu:\n"+
			"1. Add Expense\n"+
			"2. Display All Expenses\n"+
			"3. Show Monthly Totals per Category\n"+
			"4. Chart Expenses by Category for a Month\n"+
			"5. Exit\n")
		choice, ok := a.prompt("Enter your choice (1-5): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			a.addExpense(ctx)
		case "2":
			a.displayExpenses(ctx)
		case "3":
			a.showMonthlyTotals(ctx)
		case "4":
			a.chartMonth(ctx)
		case "5":
			fmt.Fprintln(a.out, "Exiting Expense Tracker. Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please enter a number between 1 and 5.")
		}
	}
}

func (a *app) addExpense(ctx context.Context) {
	rawDate, ok := a.prompt("Enter date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	rawAmount, ok := a.prompt("Enter amount: ")
	if !ok {
		return
	}
	rawCategory, ok := a.prompt("Enter category: ")
	if !ok {
		return
	}
	rawDescription, ok := a.prompt("Enter description: ")
	if !ok {
		return
	}

	expense, err := core.ParseRecord(rawDate, rawAmount, rawCategory, rawDescription)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid input: %s. Please try again.\n", userMessage(err))
		return
	}
	if err := a.store.Append(ctx, expense); err != nil {
		slog.ErrorContext(ctx, "Failed to save expense", "error", err)
		fmt.Fprintf(a.out, "Error adding expense: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Expense added successfully.")
}

func (a *app) displayExpenses(ctx context.Context) {
	records, ok := a.readAll(ctx)
	if !ok || len(records) == 0 {
		return
	}
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, report.RenderListing(records))
}

func (a *app) showMonthlyTotals(ctx context.Context) {
	records, ok := a.readAll(ctx)
	if !ok || len(records) == 0 {
		return
	}
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, report.RenderMonthlyTotals(core.GroupByMonth(records)))
}

func (a *app) chartMonth(ctx context.Context) {
	records, ok := a.readAll(ctx)
	if !ok || len(records) == 0 {
		return
	}
	raw, ok := a.prompt("Enter month to chart (YYYY-MM): ")
	if !ok {
		return
	}
	monthKey, err := core.ParseMonthKey(raw)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid month format. Use YYYY-MM.")
		return
	}
	totals := core.TotalsForMonth(records, monthKey)
	if totals.Len() == 0 {
		fmt.Fprintf(a.out, "No expenses found for %s.\n", monthKey)
		return
	}
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, report.RenderChart(monthKey, totals, a.chartWidth))
}

// readAll fetches the full record set, telling the user when the store is
// empty or unreadable. The bool is false only when the result should not be
// rendered.
func (a *app) readAll(ctx context.Context) ([]core.Expense, bool) {
	records, err := a.store.ReadAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to read expenses", "error", err)
		fmt.Fprintf(a.out, "Error reading expenses: %v\n", err)
		return nil, false
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No expenses found.")
	}
	return records, true
}

func (a *app) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false // stdin closed
	}
	return strings.TrimSpace(a.in.Text()), true
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		return "date must be a real calendar date in YYYY-MM-DD form"
	case errors.Is(err, core.ErrInvalidAmount):
		return "amount must be a decimal number"
	case errors.Is(err, core.ErrInvalidCategory):
		return "category cannot be empty"
	default:
		return err.Error()
	}
}
