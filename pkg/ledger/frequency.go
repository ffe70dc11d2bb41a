package ledger

import "fmt"

// Frequency is the recurrence cadence stored on an expense record. The
// values match what the data-entry flow writes to the database.
type Frequency string

const (
	FrequencyMonthly    Frequency = "Mensal"
	FrequencyQuarterly  Frequency = "Trimestral"
	FrequencySemiannual Frequency = "Semestral"
	FrequencyAnnual     Frequency = "Anual"

	// FrequencyNone is stored on non-recurring expenses.
	FrequencyNone Frequency = "N/A"
)

// MonthStep returns the calendar interval in months for one recurrence step.
// The second return is false for frequencies that do not recur, including
// anything unrecognized.
func (f Frequency) MonthStep() (int, bool) {
	switch f {
	case FrequencyMonthly:
		return 1, true
	case FrequencyQuarterly:
		return 3, true
	case FrequencySemiannual:
		return 6, true
	case FrequencyAnnual:
		return 12, true
	}
	return 0, false
}

// ParseFrequency validates operator input against the known recurrence
// cadences.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyMonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("unknown frequency %q, expected one of %s, %s, %s, %s",
		s, FrequencyMonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual)
}
