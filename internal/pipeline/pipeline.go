// Package pipeline wires the ledger store, the series aggregation, and the
// forecast adapter into the operator-facing workflow.
package pipeline

import (
	"fmt"
	"time"

	"github.com/Goulart21/gestao-frota/internal/forecast"
	"github.com/Goulart21/gestao-frota/internal/series"
	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/datetime"
	"github.com/Goulart21/gestao-frota/pkg/ledger"
	"go.uber.org/zap"
)

// SnapshotSource is the ledger store surface the pipeline needs.
type SnapshotSource interface {
	Snapshot() (ledger.Snapshot, error)
}

// Result carries the dense daily series and, when enough history exists and
// the model succeeded, the bounded forecast. An empty Forecast with a
// non-empty Series is a degraded but valid outcome.
type Result struct {
	Series   []ledger.DailySeriesPoint
	Forecast []ledger.ForecastPoint
}

// Pipeline runs aggregation and forecasting against a ledger snapshot.
type Pipeline struct {
	source  SnapshotSource
	adapter *forecast.Adapter
	logger  *zap.Logger
}

// New creates a pipeline. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger, source SnapshotSource, adapter *forecast.Adapter) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if adapter == nil {
		adapter = forecast.NewAdapter(logger, nil)
	}
	return &Pipeline{source: source, adapter: adapter, logger: logger}
}

// Run takes a snapshot, builds the daily series, and forecasts horizonDays
// past today.
func (p *Pipeline) Run(horizonDays int) (Result, error) {
	return p.RunWithFixedTime(horizonDays, time.Now())
}

// RunWithFixedTime is Run with an injectable clock for testing. The forecast
// is only attempted when the series holds at least MinHistoricalPoints
// pre-today points; with less history the result carries the series alone.
func (p *Pipeline) RunWithFixedTime(horizonDays int, now time.Time) (Result, error) {
	snap, err := p.source.Snapshot()
	if err != nil {
		return Result{}, fmt.Errorf("reading ledger snapshot: %w", err)
	}

	points := series.BuildWithFixedTime(p.logger, snap, horizonDays, now)

	today := datetime.Day(now)
	historical := 0
	for _, pt := range points {
		if pt.Date.Before(today) {
			historical++
		}
	}
	if historical < constants.MinHistoricalPoints {
		p.logger.Warn("insufficient history for forecasting",
			zap.String("op", "pipeline.Run"),
			zap.Int("historicalPoints", historical),
			zap.Int("required", constants.MinHistoricalPoints),
		)
		return Result{Series: points}, nil
	}

	predictions := p.adapter.ForecastWithFixedTime(points, horizonDays, now)
	if len(predictions) == 0 {
		p.logger.Warn("forecast produced no predictions, returning series only",
			zap.String("op", "pipeline.Run"),
		)
	}
	return Result{Series: points, Forecast: predictions}, nil
}

// FutureSeries returns the points on/after today, the slice the comparison
// chart consumes.
func FutureSeries(points []ledger.DailySeriesPoint, now time.Time) []ledger.DailySeriesPoint {
	today := datetime.Day(now)
	var future []ledger.DailySeriesPoint
	for _, pt := range points {
		if !pt.Date.Before(today) {
			future = append(future, pt)
		}
	}
	return future
}
