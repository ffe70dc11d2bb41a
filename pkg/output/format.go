// Package output provides utilities for formatting and displaying series
// and forecast results.
package output

import (
	"fmt"

	"github.com/Goulart21/gestao-frota/pkg/datetime"
	"github.com/Goulart21/gestao-frota/pkg/ledger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyForecast outputs a human-readable forecast table.
func PrettyForecast(points []ledger.ForecastPoint) {
	p := message.NewPrinter(language.English)
	fmt.Printf("Date       | Predicted     | Min (90%%)     | Max (90%%)     | Revenue       | Expense\n")
	fmt.Printf("____       | _________     | _________     | _________     | _______       | _______\n")
	for _, pt := range points {
		_, _ = p.Printf("%s | R$%.2f | R$%.2f | R$%.2f | R$%.2f | R$%.2f\n",
			datetime.FormatDate(pt.Date), pt.Predicted, pt.Lower, pt.Upper, pt.Revenue, pt.Expense)
	}
}

// CsvForecast outputs the forecast in comma-separated value format.
func CsvForecast(points []ledger.ForecastPoint) {
	fmt.Printf(`"date","predicted","lower","upper","revenue","expense"`)
	fmt.Printf("\n")
	for _, pt := range points {
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			datetime.FormatDate(pt.Date), pt.Predicted, pt.Lower, pt.Upper, pt.Revenue, pt.Expense)
		fmt.Printf("\n")
	}
}

// PrettySeries outputs a human-readable revenue vs. expense table.
func PrettySeries(points []ledger.DailySeriesPoint) {
	p := message.NewPrinter(language.English)
	fmt.Printf("Date       | Revenue       | Expense       | Net\n")
	fmt.Printf("____       | _______       | _______       | ___\n")
	for _, pt := range points {
		_, _ = p.Printf("%s | R$%.2f | R$%.2f | R$%.2f\n",
			datetime.FormatDate(pt.Date), pt.Revenue, pt.Expense, pt.Net)
	}
}

// CsvSeries outputs the series in comma-separated value format.
func CsvSeries(points []ledger.DailySeriesPoint) {
	fmt.Printf(`"date","revenue","expense","net"`)
	fmt.Printf("\n")
	for _, pt := range points {
		fmt.Printf(`"%s","%.2f","%.2f","%.2f"`,
			datetime.FormatDate(pt.Date), pt.Revenue, pt.Expense, pt.Net)
		fmt.Printf("\n")
	}
}
