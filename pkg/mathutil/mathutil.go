// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/bdabianco/marcolo-metrics/pkg/constants"
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

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Percentage calculates what percentage value is of total. A zero total
// yields 0 rather than a division error; every ratio in the metrics
// engine relies on this convention.
func Percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// CeilMonths rounds a fractional month count up to a whole number of
// months; partial months count as a full month. Negative inputs clamp to 0.
func CeilMonths(months float64) int {
	if months <= 0 {
		return 0
	}
	return int(math.Ceil(months))
}
