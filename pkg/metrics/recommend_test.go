package metrics

import (
	"strings"
	"testing"
)

func TestRecommendationsAllHealthy(t *testing.T) {
	snapshot := Snapshot{
		SavingsRate:       25,
		DebtToIncomeRatio: 20,
		SavingsGoalsCount: 2,
		BudgetPlansCount:  1,
	}

	if recs := Recommendations(snapshot, ModePersonal); len(recs) != 0 {
		t.Errorf("healthy snapshot produced recommendations: %v", recs)
	}
}

func TestRecommendationsAllRulesFire(t *testing.T) {
	snapshot := Snapshot{
		SavingsRate:       5,
		DebtToIncomeRatio: 50,
		SavingsGoalsCount: 0,
		BudgetPlansCount:  0,
	}

	recs := Recommendations(snapshot, ModePersonal)
	if len(recs) != 4 {
		t.Fatalf("expected all 4 rules to fire, got %d: %v", len(recs), recs)
	}
}

func TestRecommendationsIndependentRules(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		contains string
		count    int
	}{
		{
			name:     "Low savings rate only",
			snapshot: Snapshot{SavingsRate: 12, DebtToIncomeRatio: 20, SavingsGoalsCount: 1, BudgetPlansCount: 1},
			contains: "savings rate",
			count:    1,
		},
		{
			name:     "High debt-to-income only",
			snapshot: Snapshot{SavingsRate: 25, DebtToIncomeRatio: 44, SavingsGoalsCount: 1, BudgetPlansCount: 1},
			contains: "debt-to-income",
			count:    1,
		},
		{
			name:     "Missing goals only",
			snapshot: Snapshot{SavingsRate: 25, DebtToIncomeRatio: 20, SavingsGoalsCount: 0, BudgetPlansCount: 1},
			contains: "emergency fund",
			count:    1,
		},
		{
			name:     "Missing budget plan only",
			snapshot: Snapshot{SavingsRate: 25, DebtToIncomeRatio: 20, SavingsGoalsCount: 1, BudgetPlansCount: 0},
			contains: "budget plan",
			count:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommendations(tt.snapshot, ModePersonal)
			if len(recs) != tt.count {
				t.Fatalf("expected %d recommendation(s), got %d: %v", tt.count, len(recs), recs)
			}
			if !strings.Contains(strings.ToLower(recs[0]), tt.contains) {
				t.Errorf("recommendation %q does not mention %q", recs[0], tt.contains)
			}
		})
	}
}

func TestRecommendationsBoundaryValues(t *testing.T) {
	// 43 exactly is fair, not a debt-reduction trigger; 20 exactly is a
	// healthy savings rate.
	snapshot := Snapshot{
		SavingsRate:       20,
		DebtToIncomeRatio: 43,
		SavingsGoalsCount: 1,
		BudgetPlansCount:  1,
	}

	if recs := Recommendations(snapshot, ModePersonal); len(recs) != 0 {
		t.Errorf("boundary values should not trigger rules: %v", recs)
	}
}

func TestRecommendationsBusinessWording(t *testing.T) {
	snapshot := Snapshot{
		SavingsRate:       5,
		DebtToIncomeRatio: 50,
		SavingsGoalsCount: 1,
		BudgetPlansCount:  1,
	}

	recs := Recommendations(snapshot, ModeBusiness)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d: %v", len(recs), recs)
	}
	if !strings.Contains(strings.ToLower(recs[0]), "operating margin") {
		t.Errorf("business wording missing from %q", recs[0])
	}
}
