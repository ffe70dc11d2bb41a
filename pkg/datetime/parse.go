// Package datetime provides date utility functions.
package datetime

import (
	"time"

	"github.com/Goulart21/gestao-frota/pkg/constants"
)

const (
	// DateLayout is the DD/MM/YYYY format used for stored records and output.
	DateLayout = constants.DateLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a DD/MM/YYYY date string.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// FormatDate formats a time as a DD/MM/YYYY date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day truncates a time to its calendar day at UTC midnight. All series dates
// are normalized this way so they compare and hash consistently.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonthsClamped advances a date by the given number of calendar months,
// clamping the day of month to the last day of the target month (31/01 plus
// one month is 28/02 or 29/02, never 02/03 or 03/03).
func AddMonthsClamped(t time.Time, months int) time.Time {
	day := t.Day()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}
