// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/Goulart21/gestao-frota/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Mean returns the arithmetic mean of the samples, or 0 for an empty slice.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// StdDev returns the population standard deviation of the samples, or 0 for
// an empty slice.
func StdDev(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	mean := Mean(samples)
	variance := 0.0
	for _, v := range samples {
		diff := v - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(samples)))
}
