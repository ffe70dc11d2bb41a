package cli

import (
	"time"

	"github.com/Goulart21/gestao-frota/internal/pipeline"
	"github.com/Goulart21/gestao-frota/internal/series"
	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/output"
	"github.com/spf13/cobra"
)

var seriesHorizon int

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Print the projected daily revenue vs. expense comparison",
	RunE:  runSeries,
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.Flags().IntVarP(&seriesHorizon, "horizon", "H", 0, "days past today to include (defaults to config)")
}

func runSeries(_ *cobra.Command, _ []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	horizon := seriesHorizon
	if horizon <= 0 {
		horizon = conf.Forecast.HorizonDays
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	snap, err := st.Snapshot()
	if err != nil {
		return err
	}

	now := time.Now()
	points := pipeline.FutureSeries(series.BuildWithFixedTime(logger, snap, horizon, now), now)

	switch format {
	case constants.OutputFormatPretty:
		output.PrettySeries(points)
	case constants.OutputFormatCSV:
		output.CsvSeries(points)
	}
	return nil
}
