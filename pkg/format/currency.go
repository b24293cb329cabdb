package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/bdabianco/marcolo-metrics/pkg/constants"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent returns a percentage string with two decimals (e.g., "25.00%").
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// Ratio returns a plain ratio string with two decimals (e.g., "1.50").
func Ratio(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// PayoffMonths renders a months-to-payoff count; the sentinel renders as
// "never" rather than a literal duration.
func PayoffMonths(months int) string {
	switch {
	case months >= constants.NeverPayoffMonths:
		return "never"
	case months == 1:
		return "1 month"
	default:
		return fmt.Sprintf("%d months", months)
	}
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
