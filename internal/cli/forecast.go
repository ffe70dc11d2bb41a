package cli

import (
	"fmt"

	"github.com/Goulart21/gestao-frota/internal/forecast"
	"github.com/Goulart21/gestao-frota/internal/pipeline"
	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/output"
	"github.com/Goulart21/gestao-frota/pkg/timeseries"
	"github.com/spf13/cobra"
)

var forecastHorizon int

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project future daily net cash flow with confidence bounds",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
	forecastCmd.Flags().IntVarP(&forecastHorizon, "horizon", "H", 0, "days to forecast past today (defaults to config)")
}

func runForecast(_ *cobra.Command, _ []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	horizon := forecastHorizon
	if horizon <= 0 {
		horizon = conf.Forecast.HorizonDays
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	opts := timeseries.DefaultOptions()
	opts.IntervalWidth = conf.Forecast.IntervalWidth
	adapter := forecast.NewAdapter(logger, timeseries.NewSeasonalTrend(opts))

	result, err := pipeline.New(logger, st, adapter).Run(horizon)
	if err != nil {
		return err
	}

	if len(result.Forecast) == 0 {
		fmt.Println("No forecast available; record more revenue and expense entries first.")
		return nil
	}

	switch format {
	case constants.OutputFormatPretty:
		output.PrettyForecast(result.Forecast)
	case constants.OutputFormatCSV:
		output.CsvForecast(result.Forecast)
	}
	return nil
}
