// Package debts provides debt aggregation and amortization payoff utilities.
package debts

import (
	"fmt"

	"github.com/bdabianco/marcolo-metrics/pkg/records"
	"go.uber.org/zap"
)

// Instrument is one unified debt obligation, sourced either from a mortgage
// tranche or from a cashflow record's generic debts collection. The two
// categories are disjoint and are never double-counted.
type Instrument struct {
	Name           string
	Balance        float64
	MonthlyPayment float64
	InterestRate   float64
	Mortgage       bool
}

// Portfolio is the ordered collection of a scope's debt instruments along
// with totals recomputed from the instrument list.
type Portfolio struct {
	Instruments         []Instrument
	TotalBalance        float64
	TotalMonthlyPayment float64
}

// Aggregate merges mortgage tranches and generic debts from the supplied
// cashflow records into one ordered portfolio. Per record the order is
// mortgage primary, mortgage secondary, then debts in record order; records
// concatenate in input order. Entries with non-positive balance are silently
// dropped. Stored totals on the records are not trusted; both portfolio
// totals are recomputed from the included instruments.
func Aggregate(logger *zap.Logger, cashflows []records.CashflowRecord) Portfolio {
	if logger == nil {
		logger = zap.NewNop()
	}

	var portfolio Portfolio
	for _, record := range cashflows {
		if record.Mortgage != nil {
			portfolio.include(trancheInstrument(record.Mortgage.Primary))
			portfolio.include(trancheInstrument(record.Mortgage.Secondary))
		}
		for _, debt := range record.Debts {
			portfolio.include(Instrument{
				Name:           debt.Name,
				Balance:        debt.Balance,
				MonthlyPayment: debt.MonthlyPayment,
				InterestRate:   debt.InterestRate,
			})
		}
	}

	if len(portfolio.Instruments) > 0 {
		logger.Debug(fmt.Sprintf("aggregated %d debt instruments totaling %.2f",
			len(portfolio.Instruments), portfolio.TotalBalance),
			zap.String("op", "debts.Aggregate"),
		)
	}
	return portfolio
}

func trancheInstrument(tranche records.MortgageTranche) Instrument {
	name := tranche.Name
	if name == "" {
		name = "mortgage"
	}
	return Instrument{
		Name:           name,
		Balance:        tranche.Balance,
		MonthlyPayment: tranche.MonthlyPayment,
		InterestRate:   tranche.InterestRate,
		Mortgage:       true,
	}
}

func (p *Portfolio) include(instrument Instrument) {
	if instrument.Balance <= 0 {
		return
	}
	p.Instruments = append(p.Instruments, instrument)
	p.TotalBalance += instrument.Balance
	p.TotalMonthlyPayment += instrument.MonthlyPayment
}
