// Package series converts sparse, irregularly-dated ledger rows into a dense
// daily cash-flow series spanning one year of history plus the forecast
// horizon.
package series

import (
	"time"

	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/datetime"
	"github.com/Goulart21/gestao-frota/pkg/ledger"
	"github.com/Goulart21/gestao-frota/pkg/mathutil"
	"go.uber.org/zap"
)

// Build produces the daily series for [today-HistoryDays, today+horizonDays].
func Build(logger *zap.Logger, snap ledger.Snapshot, horizonDays int) []ledger.DailySeriesPoint {
	return BuildWithFixedTime(logger, snap, horizonDays, time.Now())
}

// BuildWithFixedTime is Build with an injectable clock for testing. The
// result has exactly one point per calendar day in the window, in ascending
// date order, with Net = Revenue - Expense on every point. Records with
// malformed dates or unknown frequencies are skipped with a warning;
// aggregation itself never fails.
func BuildWithFixedTime(logger *zap.Logger, snap ledger.Snapshot, horizonDays int, now time.Time) []ledger.DailySeriesPoint {
	if logger == nil {
		logger = zap.NewNop()
	}

	today := datetime.Day(now)
	start := today.AddDate(0, 0, -constants.HistoryDays)
	end := today.AddDate(0, 0, horizonDays)

	expenses := accumulateExpenses(logger, snap.Expenses, end)
	revenues, samples := groupRevenue(logger, snap.RevenueTotals)

	// Projection constant for days without logged revenue: the mean of the
	// historical per-day totals, or the fixed fallback when none exist.
	projected := constants.FallbackDailyRevenue
	if len(samples) > 0 {
		projected = mathutil.Mean(samples)
	}

	// Only days from today forward receive the projected fill; past days
	// without logged revenue stay at zero.
	for d := today; !d.After(end); d = d.AddDate(0, 0, 1) {
		if _, ok := revenues[d]; !ok {
			revenues[d] = projected
		}
	}

	points := make([]ledger.DailySeriesPoint, 0, constants.HistoryDays+horizonDays+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		revenue := revenues[d]
		expense := expenses[d]
		points = append(points, ledger.DailySeriesPoint{
			Date:    d,
			Revenue: revenue,
			Expense: expense,
			Net:     revenue - expense,
		})
	}
	return points
}

// accumulateExpenses sums expense amounts per calendar day. Recurring
// expenses contribute at their first-occurrence date and at every step of
// their calendar interval up to and including the window end; occurrences
// landing outside the emitted window are computed but never shown.
func accumulateExpenses(logger *zap.Logger, entries []ledger.ExpenseEntry, end time.Time) map[time.Time]float64 {
	acc := make(map[time.Time]float64)
	for _, e := range entries {
		first, err := datetime.ParseDate(e.FirstDate)
		if err != nil {
			logger.Warn("skipping expense with malformed date",
				zap.String("op", "series.accumulateExpenses"),
				zap.String("title", e.Title),
				zap.String("date", e.FirstDate),
			)
			continue
		}

		if !e.Recurring {
			acc[first] += e.Amount
			continue
		}

		step, ok := e.Frequency.MonthStep()
		if !ok {
			logger.Warn("skipping expense with unknown frequency",
				zap.String("op", "series.accumulateExpenses"),
				zap.String("title", e.Title),
				zap.String("frequency", string(e.Frequency)),
			)
			continue
		}

		occurrences := 0
		for d := first; !d.After(end); d = datetime.AddMonthsClamped(d, step) {
			acc[d] += e.Amount
			occurrences++
			if occurrences >= constants.MaxRecurrenceOccurrences {
				logger.Warn("recurrence walk truncated",
					zap.String("op", "series.accumulateExpenses"),
					zap.String("title", e.Title),
					zap.String("firstDate", e.FirstDate),
					zap.Int("occurrences", occurrences),
				)
				break
			}
		}
	}
	return acc
}

// groupRevenue parses the grouped revenue totals into a date-keyed lookup
// and collects the per-day totals as the projection sample set.
func groupRevenue(logger *zap.Logger, totals []ledger.RevenueTotal) (map[time.Time]float64, []float64) {
	byDate := make(map[time.Time]float64, len(totals))
	samples := make([]float64, 0, len(totals))
	for _, rt := range totals {
		d, err := datetime.ParseDate(rt.Date)
		if err != nil {
			logger.Warn("skipping revenue total with malformed date",
				zap.String("op", "series.groupRevenue"),
				zap.String("date", rt.Date),
			)
			continue
		}
		byDate[d] = rt.Amount
		samples = append(samples, rt.Amount)
	}
	return byDate, samples
}
