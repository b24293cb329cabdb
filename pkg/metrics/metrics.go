// Package metrics derives the financial health snapshot from aggregated
// record data and classifies its ratios into qualitative bands.
package metrics

import (
	"github.com/bdabianco/marcolo-metrics/pkg/constants"
	"github.com/bdabianco/marcolo-metrics/pkg/debts"
	"github.com/bdabianco/marcolo-metrics/pkg/mathutil"
	"github.com/bdabianco/marcolo-metrics/pkg/records"
)

// Mode selects personal or business ratio semantics.
type Mode string

// Supported modes.
const (
	ModePersonal Mode = constants.ModePersonal
	ModeBusiness Mode = constants.ModeBusiness
)

// Inputs carries the already-scoped record aggregates the snapshot is
// computed from. The caller decides the scope (one project or all projects)
// before assembling Inputs; nothing here depends on ambient state.
type Inputs struct {
	Budgets          []records.BudgetSnapshot
	Portfolio        debts.Portfolio
	Assets           []records.AssetRecord
	Goals            []records.SavingsGoal
	BudgetPlansCount int
}

// Snapshot holds every derived metric. It is created fresh on each
// computation and never mutated in place.
type Snapshot struct {
	TotalAnnualIncome       float64 `json:"totalAnnualIncome"`
	TotalAnnualExpenses     float64 `json:"totalAnnualExpenses"`
	AnnualSurplus           float64 `json:"annualSurplus"`
	SavingsRate             float64 `json:"savingsRate"`
	MonthlyGrossIncome      float64 `json:"monthlyGrossIncome"`
	TotalMonthlyDebtPayment float64 `json:"totalMonthlyDebtPayment"`
	DebtToIncomeRatio       float64 `json:"debtToIncomeRatio"`
	TotalDebtBalance        float64 `json:"totalDebtBalance"`
	TotalAssets             float64 `json:"totalAssets"`
	NetWorth                float64 `json:"netWorth"`
	TotalSavingsTarget      float64 `json:"totalSavingsTarget"`
	TotalSavingsCurrent     float64 `json:"totalSavingsCurrent"`
	SavingsProgress         float64 `json:"savingsProgress"`
	DebtToAssetRatio        float64 `json:"debtToAssetRatio"`
	DebtServiceCoverage     float64 `json:"debtServiceCoverage"`
	DebtFreeMonths          int     `json:"debtFreeMonths"`
	SavingsGoalsCount       int     `json:"savingsGoalsCount"`
	BudgetPlansCount        int     `json:"budgetPlansCount"`
}

// Compute derives a fresh snapshot from the inputs. Every division is
// zero-guarded: a zero denominator defines the ratio as 0 rather than
// failing. Degenerate inputs (no budgets, no debts, no assets) resolve to
// zero contributions, never errors.
func Compute(in Inputs) Snapshot {
	var snapshot Snapshot

	var grossAnnual float64
	for _, budget := range in.Budgets {
		snapshot.TotalAnnualIncome += budget.NetIncome
		snapshot.TotalAnnualExpenses += budget.TotalExpenses
		grossAnnual += budget.GrossIncome
	}

	snapshot.AnnualSurplus = snapshot.TotalAnnualIncome - snapshot.TotalAnnualExpenses
	snapshot.SavingsRate = mathutil.Percentage(snapshot.AnnualSurplus, snapshot.TotalAnnualIncome)
	snapshot.MonthlyGrossIncome = grossAnnual / constants.MonthsPerYear

	snapshot.TotalDebtBalance = in.Portfolio.TotalBalance
	snapshot.TotalMonthlyDebtPayment = in.Portfolio.TotalMonthlyPayment
	// Monthly payment against monthly gross income; never mixed periods.
	snapshot.DebtToIncomeRatio = mathutil.Percentage(snapshot.TotalMonthlyDebtPayment, snapshot.MonthlyGrossIncome)
	snapshot.DebtFreeMonths = in.Portfolio.MonthsToDebtFree()

	for _, asset := range in.Assets {
		snapshot.TotalAssets += asset.Value
	}
	snapshot.NetWorth = snapshot.TotalAssets - snapshot.TotalDebtBalance
	snapshot.DebtToAssetRatio = mathutil.Percentage(snapshot.TotalDebtBalance, snapshot.TotalAssets)

	for _, goal := range in.Goals {
		snapshot.TotalSavingsTarget += goal.TargetAmount
		snapshot.TotalSavingsCurrent += goal.CurrentAmount
	}
	snapshot.SavingsProgress = mathutil.Percentage(snapshot.TotalSavingsCurrent, snapshot.TotalSavingsTarget)

	annualDebtService := snapshot.TotalMonthlyDebtPayment * constants.MonthsPerYear
	if annualDebtService > 0 {
		snapshot.DebtServiceCoverage = snapshot.AnnualSurplus / annualDebtService
	}

	snapshot.SavingsGoalsCount = len(in.Goals)
	snapshot.BudgetPlansCount = in.BudgetPlansCount

	return snapshot
}
