// Package validation provides common validation utilities for operator
// input.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Goulart21/gestao-frota/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ParseAmount parses a non-negative currency amount, accepting a comma as
// the decimal separator.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if value < 0 {
		return 0, fmt.Errorf("amount %q must not be negative", s)
	}
	return value, nil
}

// ParsePositiveAmount parses a strictly positive currency amount.
func ParsePositiveAmount(s string) (float64, error) {
	value, err := ParseAmount(s)
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, fmt.Errorf("amount %q must be positive", s)
	}
	return value, nil
}

// ValidateDate checks that a date string is in DD/MM/YYYY format.
func ValidateDate(s string) error {
	if _, err := time.Parse(constants.DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, expected DD/MM/YYYY", s)
	}
	return nil
}

// ValidateTitle checks that a free-text title is not empty.
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title must not be empty")
	}
	return nil
}
