// Package ledger defines the persisted record kinds and the daily series
// types derived from them.
package ledger

import "time"

// RevenueEntry is one logged day of hours-worked revenue for a machine.
// Entries are immutable once created.
type RevenueEntry struct {
	Machine  string
	Kind     string
	Amount   float64
	WorkDate string // DD/MM/YYYY
}

// ExpenseEntry is one logged expense, optionally recurring on a fixed
// calendar cadence starting at FirstDate. Entries are immutable once created.
type ExpenseEntry struct {
	Title     string
	Amount    float64
	FirstDate string // DD/MM/YYYY
	Recurring bool
	Frequency Frequency
}

// RevenueTotal is the summed revenue logged for a single date.
type RevenueTotal struct {
	Date   string // DD/MM/YYYY
	Amount float64
}

// Snapshot is a consistent read of the ledger taken at aggregation time.
type Snapshot struct {
	Expenses      []ExpenseEntry
	RevenueTotals []RevenueTotal
}

// DailySeriesPoint is one day of the dense cash-flow series. Net is always
// Revenue minus Expense.
type DailySeriesPoint struct {
	Date    time.Time
	Revenue float64
	Expense float64
	Net     float64
}

// ForecastPoint is one predicted day of net cash flow with its uncertainty
// bounds, joined with the known revenue/expense breakdown for that date.
type ForecastPoint struct {
	Date      time.Time
	Predicted float64
	Lower     float64
	Upper     float64
	Revenue   float64
	Expense   float64
}
