package debts

import (
	"math"

	"github.com/bdabianco/marcolo-metrics/pkg/constants"
	"github.com/bdabianco/marcolo-metrics/pkg/mathutil"
)

// MonthsToPayoff computes the whole number of months required to retire a
// debt under compound-interest amortization. Partial months count as a full
// month. An inactive schedule (no payment or no balance) returns 0. When the
// payment does not cover the accruing interest the balance never shrinks and
// the NeverPayoffMonths sentinel is returned.
func MonthsToPayoff(balance, annualRatePercent, monthlyPayment float64) int {
	if monthlyPayment <= 0 || balance <= 0 {
		return 0
	}

	monthlyRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	if monthlyRate == 0 {
		return mathutil.CeilMonths(balance / monthlyPayment)
	}

	monthlyInterest := balance * monthlyRate
	if monthlyPayment <= monthlyInterest {
		return constants.NeverPayoffMonths
	}

	// Standard amortization closed form.
	months := -math.Log(1-balance*monthlyRate/monthlyPayment) / math.Log(1+monthlyRate)
	return mathutil.CeilMonths(months)
}

// MonthsToPayoff returns the payoff month count for a single instrument.
func (i Instrument) MonthsToPayoff() int {
	return MonthsToPayoff(i.Balance, i.InterestRate, i.MonthlyPayment)
}

// MonthsToDebtFree returns the household months-to-debt-freedom: the maximum
// of the instruments' individual payoff counts, since the household is
// debt-free only once its slowest-paying debt is cleared.
func (p Portfolio) MonthsToDebtFree() int {
	months := 0
	for _, instrument := range p.Instruments {
		if m := instrument.MonthsToPayoff(); m > months {
			months = m
		}
	}
	return months
}
