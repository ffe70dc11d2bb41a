// Package forecast adapts the daily cash-flow series to the forecasting
// model and merges the model's predictions with the known revenue/expense
// breakdown for the same future dates.
package forecast

import (
	"sort"
	"time"

	"github.com/Goulart21/gestao-frota/pkg/datetime"
	"github.com/Goulart21/gestao-frota/pkg/ledger"
	"github.com/Goulart21/gestao-frota/pkg/timeseries"
	"go.uber.org/zap"
)

// Adapter wraps a forecasting model with the pre/post processing the
// cash-flow pipeline needs. Any failure inside the model surfaces as an
// empty result with a warning, never as an error the caller must handle.
type Adapter struct {
	model  timeseries.Model
	logger *zap.Logger
}

// NewAdapter creates an adapter around the given model. A nil logger is
// replaced with a no-op logger, a nil model with the default seasonal-trend
// model.
func NewAdapter(logger *zap.Logger, model timeseries.Model) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == nil {
		model = timeseries.NewSeasonalTrend(timeseries.DefaultOptions())
	}
	return &Adapter{model: model, logger: logger}
}

// Forecast fits the model on the pre-today portion of the series and returns
// one bounded prediction per day from today through the window end.
func (a *Adapter) Forecast(series []ledger.DailySeriesPoint, horizonDays int) []ledger.ForecastPoint {
	return a.ForecastWithFixedTime(series, horizonDays, time.Now())
}

// ForecastWithFixedTime is Forecast with an injectable clock for testing.
// An empty result means the forecast degraded (no input, malformed input, or
// a model failure); callers should inform the operator rather than treat it
// as fatal.
func (a *Adapter) ForecastWithFixedTime(series []ledger.DailySeriesPoint, horizonDays int, now time.Time) []ledger.ForecastPoint {
	if len(series) == 0 {
		a.logger.Warn("empty series input, skipping forecast",
			zap.String("op", "forecast.Forecast"),
		)
		return nil
	}

	today := datetime.Day(now)
	breakdown := make(map[time.Time]ledger.DailySeriesPoint, len(series))
	var history []timeseries.Observation
	for _, p := range series {
		if p.Date.IsZero() {
			a.logger.Warn("malformed series input, skipping forecast",
				zap.String("op", "forecast.Forecast"),
			)
			return nil
		}
		breakdown[p.Date] = p
		if p.Date.Before(today) {
			history = append(history, timeseries.Observation{Date: p.Date, Value: p.Net})
		}
	}

	if len(history) == 0 {
		// Give the model a single zero-valued point to fit on rather than
		// failing outright; the earliest predictions will be degraded.
		a.logger.Warn("no historical points, fitting on a zero placeholder",
			zap.String("op", "forecast.Forecast"),
		)
		history = append(history, timeseries.Observation{Date: today.AddDate(0, 0, -1), Value: 0})
	}

	if err := a.model.Fit(history); err != nil {
		a.logger.Warn("model fit failed",
			zap.String("op", "forecast.Forecast"),
			zap.Error(err),
		)
		return nil
	}

	// Predict over the full history plus horizonDays additional future days,
	// then keep only the dates on/after today.
	dates := make([]time.Time, 0, len(history)+horizonDays)
	for _, o := range history {
		dates = append(dates, o.Date)
	}
	last := history[len(history)-1].Date
	for i := 1; i <= horizonDays; i++ {
		dates = append(dates, last.AddDate(0, 0, i))
	}

	predictions, err := a.model.Predict(dates)
	if err != nil {
		a.logger.Warn("model predict failed",
			zap.String("op", "forecast.Forecast"),
			zap.Error(err),
		)
		return nil
	}

	points := make([]ledger.ForecastPoint, 0, horizonDays)
	for _, pr := range predictions {
		if pr.Date.Before(today) {
			continue
		}
		point := ledger.ForecastPoint{
			Date:      pr.Date,
			Predicted: pr.Value,
			Lower:     pr.Lower,
			Upper:     pr.Upper,
		}
		if bp, ok := breakdown[pr.Date]; ok {
			point.Revenue = bp.Revenue
			point.Expense = bp.Expense
		}
		points = append(points, point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}
