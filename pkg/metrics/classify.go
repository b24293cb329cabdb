package metrics

// Band is the qualitative classification of a ratio.
type Band string

// Classification bands, best to worst.
const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

// Personal-mode debt-to-income thresholds (percent of monthly gross income).
const (
	dtiExcellentBelow = 28.0
	dtiGoodBelow      = 36.0
	dtiFairThrough    = 43.0
)

// Savings-rate thresholds (percent of annual income); business mode applies
// the same bands to operating margin.
const (
	savingsExcellentFrom = 20.0
	savingsGoodFrom      = 15.0
	savingsFairFrom      = 10.0
)

// Debt-to-asset thresholds (percent of total assets), shared by both modes.
const (
	dtaExcellentBelow = 30.0
	dtaGoodBelow      = 50.0
	dtaFairThrough    = 70.0
)

// Debt-service-coverage thresholds (ratio, higher is better); business mode
// uses these in the debt slot instead of DTI.
const (
	dscrExcellentFrom = 2.0
	dscrGoodFrom      = 1.5
	dscrFairFrom      = 1.25
)

// Classification groups the band for each ratio slot. In business mode the
// debt slot holds the debt-service-coverage band and the savings slot holds
// the operating-margin band; the slot shape is identical across modes.
type Classification struct {
	DebtToIncome Band `json:"debtToIncome"`
	SavingsRate  Band `json:"savingsRate"`
	DebtToAsset  Band `json:"debtToAsset"`
}

// ClassifyDebtToIncome maps a personal debt-to-income percentage to a band.
func ClassifyDebtToIncome(ratio float64) Band {
	switch {
	case ratio < dtiExcellentBelow:
		return BandExcellent
	case ratio < dtiGoodBelow:
		return BandGood
	case ratio <= dtiFairThrough:
		return BandFair
	default:
		return BandPoor
	}
}

// ClassifySavingsRate maps a savings-rate percentage to a band.
func ClassifySavingsRate(rate float64) Band {
	switch {
	case rate >= savingsExcellentFrom:
		return BandExcellent
	case rate >= savingsGoodFrom:
		return BandGood
	case rate >= savingsFairFrom:
		return BandFair
	default:
		return BandPoor
	}
}

// ClassifyDebtToAsset maps a debt-to-asset percentage to a band.
func ClassifyDebtToAsset(ratio float64) Band {
	switch {
	case ratio < dtaExcellentBelow:
		return BandExcellent
	case ratio < dtaGoodBelow:
		return BandGood
	case ratio <= dtaFairThrough:
		return BandFair
	default:
		return BandPoor
	}
}

// ClassifyDebtServiceCoverage maps a debt-service-coverage ratio to a band.
// Higher coverage is better, so the ordering inverts.
func ClassifyDebtServiceCoverage(ratio float64) Band {
	switch {
	case ratio >= dscrExcellentFrom:
		return BandExcellent
	case ratio >= dscrGoodFrom:
		return BandGood
	case ratio >= dscrFairFrom:
		return BandFair
	default:
		return BandPoor
	}
}

// Classify produces the full classification for a snapshot under the given
// mode. It is a pure function of the snapshot's ratio values and the mode.
func Classify(snapshot Snapshot, mode Mode) Classification {
	if mode == ModeBusiness {
		return Classification{
			DebtToIncome: ClassifyDebtServiceCoverage(snapshot.DebtServiceCoverage),
			SavingsRate:  ClassifySavingsRate(snapshot.SavingsRate),
			DebtToAsset:  ClassifyDebtToAsset(snapshot.DebtToAssetRatio),
		}
	}
	return Classification{
		DebtToIncome: ClassifyDebtToIncome(snapshot.DebtToIncomeRatio),
		SavingsRate:  ClassifySavingsRate(snapshot.SavingsRate),
		DebtToAsset:  ClassifyDebtToAsset(snapshot.DebtToAssetRatio),
	}
}
