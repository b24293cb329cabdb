// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/bdabianco/marcolo-metrics/pkg/constants"
)

// DateTimeLayout is the year-month format used for goal target dates and
// payoff projections.
const DateTimeLayout = constants.DateTimeLayout

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// MonthsUntil returns the number of whole months from the from date to the
// to date; a target in the past yields 0.
func MonthsUntil(from time.Time, to string) (int, error) {
	toT, err := time.Parse(DateTimeLayout, to)
	if err != nil {
		return 0, err
	}
	fromT := MustParseTime(DateTimeLayout, from.Format(DateTimeLayout))
	months := (toT.Year()-fromT.Year())*constants.MonthsPerYear + int(toT.Month()) - int(fromT.Month())
	if months < 0 {
		return 0, nil
	}
	return months, nil
}
