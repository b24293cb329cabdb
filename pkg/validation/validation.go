// Package validation provides input validation utilities shared by the CLI
// and the profile loader.
package validation

import (
	"fmt"

	"github.com/bdabianco/marcolo-metrics/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q; expected %s, %s, or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON)
	}
}

// ValidateMode checks that the profile's entity mode is recognized. An empty
// mode is valid and defaults to personal.
func ValidateMode(mode string) error {
	switch mode {
	case "", constants.ModePersonal, constants.ModeBusiness:
		return nil
	default:
		return fmt.Errorf("unsupported mode %q; expected %s or %s",
			mode, constants.ModePersonal, constants.ModeBusiness)
	}
}

// ValidateFrequency checks that a record's frequency is recognized. An empty
// frequency is valid and defaults to monthly.
func ValidateFrequency(frequency string) error {
	switch frequency {
	case "", constants.FrequencyMonthly, constants.FrequencyQuarterly,
		constants.FrequencyAnnual, constants.FrequencyCustom:
		return nil
	default:
		return fmt.Errorf("unsupported frequency %q", frequency)
	}
}
