// Package constants provides shared constants for the gestao-frota application.
package constants

// DateLayout is the DD/MM/YYYY format used at every boundary: stored
// records, CLI input, and output.
const DateLayout = "02/01/2006"

// Series window constants
const (
	// HistoryDays is how far back the daily series reaches from today.
	HistoryDays = 365

	// DefaultHorizonDays is the default number of days projected past today.
	DefaultHorizonDays = 365

	// InteractiveHorizonDays is the horizon used by the forecast command.
	InteractiveHorizonDays = 180
)

// Revenue projection constants
const (
	// FallbackDailyRevenue is the projected daily revenue applied when the
	// ledger holds no historical revenue at all.
	FallbackDailyRevenue = 500.00

	// RevenueKindHoursWorked tags ledger rows produced by the hours-worked
	// revenue entry flow.
	RevenueKindHoursWorked = "hora_trabalhada"
)

// Forecast constants
const (
	// MinHistoricalPoints is the minimum number of pre-today series points
	// required before running a forecast.
	MinHistoricalPoints = 2

	// DefaultIntervalWidth is the two-sided uncertainty interval width.
	DefaultIntervalWidth = 0.90
)

// MaxRecurrenceOccurrences bounds the recurring-expense walk so a
// first-occurrence date far in the past cannot iterate without limit.
const MaxRecurrenceOccurrences = 1200

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// File constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultDatabaseFile is the default SQLite database file name
	DefaultDatabaseFile = "gestao_frota.db"
)
