package metrics

// Recommendation thresholds; each rule evaluates independently against the
// snapshot and all applicable rules fire.
const (
	recommendSavingsRateBelow  = 20.0
	recommendDebtReductionOver = 43.0
)

// Recommendations produces the ordered advisory list for a snapshot. An
// empty list is valid output when all indicators are healthy.
func Recommendations(snapshot Snapshot, mode Mode) []string {
	var recs []string

	if snapshot.SavingsRate < recommendSavingsRateBelow {
		if mode == ModeBusiness {
			recs = append(recs, "Operating margin is below 20%; look for ways to grow revenue or trim operating costs.")
		} else {
			recs = append(recs, "Your savings rate is below 20%; consider trimming expenses to set aside more each month.")
		}
	}

	if snapshot.DebtToIncomeRatio > recommendDebtReductionOver {
		if mode == ModeBusiness {
			recs = append(recs, "Debt service is consuming a large share of income; prioritize paying down high-interest obligations.")
		} else {
			recs = append(recs, "Your debt-to-income ratio is above 43%; prioritize paying down high-interest debt.")
		}
	}

	if snapshot.SavingsGoalsCount == 0 {
		recs = append(recs, "You have no savings goals; start with an emergency fund covering 3-6 months of expenses.")
	}

	if snapshot.BudgetPlansCount == 0 {
		recs = append(recs, "You have no budget plans; create one to track income and expenses.")
	}

	return recs
}
