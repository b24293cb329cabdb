// Package records defines the typed financial record structures consumed by
// the metrics engine and the normalization boundary that converts raw stored
// rows (which may encode nested structures as opaque text blobs) into them.
package records

import (
	"github.com/bdabianco/marcolo-metrics/pkg/constants"
)

// Frequency describes how often a periodic amount recurs.
type Frequency string

// Supported frequencies.
const (
	FrequencyMonthly   Frequency = constants.FrequencyMonthly
	FrequencyQuarterly Frequency = constants.FrequencyQuarterly
	FrequencyAnnual    Frequency = constants.FrequencyAnnual
	FrequencyCustom    Frequency = constants.FrequencyCustom
)

// PeriodsPerYear returns the annualization multiplier for the frequency.
// Custom frequencies use the explicit period count; a missing or
// non-positive count contributes nothing to the annual total.
func (f Frequency) PeriodsPerYear(customPeriods int) float64 {
	switch f {
	case FrequencyMonthly, "":
		return constants.MonthsPerYear
	case FrequencyQuarterly:
		return constants.QuartersPerYear
	case FrequencyAnnual:
		return 1
	case FrequencyCustom:
		if customPeriods > 0 {
			return float64(customPeriods)
		}
		return 0
	default:
		return 0
	}
}

// IncomeRecord is a single income entry for a project.
type IncomeRecord struct {
	ID             string
	Name           string
	Amount         float64
	Frequency      Frequency
	PeriodsPerYear int
	GrossIncome    bool
}

// Annualized returns the yearly total for the income record.
func (r IncomeRecord) Annualized() float64 {
	return r.Amount * r.Frequency.PeriodsPerYear(r.PeriodsPerYear)
}

// ExpenseRecord is a single expense entry for a project.
type ExpenseRecord struct {
	ID             string
	Name           string
	Amount         float64
	Frequency      Frequency
	PeriodsPerYear int
}

// Annualized returns the yearly total for the expense record.
func (r ExpenseRecord) Annualized() float64 {
	return r.Amount * r.Frequency.PeriodsPerYear(r.PeriodsPerYear)
}

// BudgetSnapshot holds the aggregated income and expense figures for one
// planning project. It is immutable once computed and re-derivable from the
// project's income and expense records.
type BudgetSnapshot struct {
	ProjectID     string
	GrossIncome   float64
	NetIncome     float64
	TotalExpenses float64
}

// DebtEntry is one generic debt on a cashflow record.
type DebtEntry struct {
	Name           string
	Balance        float64
	MonthlyPayment float64
	InterestRate   float64
}

// MortgageTranche is one of up to two independently-tracked mortgage
// balances on a cashflow record.
type MortgageTranche struct {
	Name           string
	Balance        float64
	MonthlyPayment float64
	InterestRate   float64
}

// Mortgage groups the primary and secondary tranches of a cashflow record.
type Mortgage struct {
	Primary   MortgageTranche
	Secondary MortgageTranche
}

// CashflowRecord carries a project's debt obligations: a generic debts
// collection and a mortgage with up to two tranches. Stored total figures on
// the raw row are not trusted and are recomputed from the instrument list.
type CashflowRecord struct {
	ID        string
	ProjectID string
	Debts     []DebtEntry
	Mortgage  *Mortgage
}

// SavingsGoal is a savings target belonging to exactly one project.
type SavingsGoal struct {
	ID                  string
	ProjectID           string
	Name                string
	TargetAmount        float64
	CurrentAmount       float64
	MonthlyContribution float64
	TargetDate          string
}

// AssetRecord is a user-level asset holding; assets are summed per user,
// independent of any project.
type AssetRecord struct {
	ID    string
	Name  string
	Value float64
}
