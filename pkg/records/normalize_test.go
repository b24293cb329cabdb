package records

import (
	"math"
	"testing"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{"Float", 1234.56, 1234.56},
		{"Int", 42, 42.0},
		{"Int64", int64(7), 7.0},
		{"Numeric string", "250.75", 250.75},
		{"Numeric string with spaces", " 100 ", 100.0},
		{"Negative numeric string", "-15.5", -15.5},
		{"Non-numeric string", "n/a", 0},
		{"Empty string", "", 0},
		{"Nil", nil, 0},
		{"Bool", true, 0},
		{"Map", map[string]any{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CoerceNumber(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("CoerceNumber(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeDebtListLegacyText(t *testing.T) {
	raw := `[{"name":"Credit Card","balance":5000,"monthlyPayment":"150","interestRate":19.99}]`

	debts := NormalizeDebtList(nil, raw)
	if len(debts) != 1 {
		t.Fatalf("expected 1 debt, got %d", len(debts))
	}
	if debts[0].Name != "Credit Card" {
		t.Errorf("name = %q, expected Credit Card", debts[0].Name)
	}
	if debts[0].Balance != 5000 {
		t.Errorf("balance = %v, expected 5000", debts[0].Balance)
	}
	if debts[0].MonthlyPayment != 150 {
		t.Errorf("monthlyPayment = %v, expected 150 (coerced from string)", debts[0].MonthlyPayment)
	}
	if math.Abs(debts[0].InterestRate-19.99) > 0.001 {
		t.Errorf("interestRate = %v, expected 19.99", debts[0].InterestRate)
	}
}

func TestNormalizeDebtListStructured(t *testing.T) {
	raw := []any{
		map[string]any{"name": "Car Loan", "balance": 12000.0, "payment": 350.0, "rate": 4.5},
	}

	debts := NormalizeDebtList(nil, raw)
	if len(debts) != 1 {
		t.Fatalf("expected 1 debt, got %d", len(debts))
	}
	if debts[0].MonthlyPayment != 350 {
		t.Errorf("monthlyPayment = %v, expected 350 (alternate key)", debts[0].MonthlyPayment)
	}
}

func TestNormalizeDebtListDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"Nil field", nil},
		{"Undecodable text", "{definitely not json"},
		{"Empty text", "  "},
		{"Wrong shape", 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if debts := NormalizeDebtList(nil, tt.input); len(debts) != 0 {
				t.Errorf("expected empty default, got %d debts", len(debts))
			}
		})
	}
}

func TestNormalizeDebtListIdempotent(t *testing.T) {
	typed := []DebtEntry{{Name: "Loan", Balance: 1000, MonthlyPayment: 50}}

	once := NormalizeDebtList(nil, typed)
	twice := NormalizeDebtList(nil, any(once))
	if len(twice) != 1 || twice[0] != typed[0] {
		t.Errorf("normalizing an already-typed list changed it: %+v", twice)
	}
}

func TestNormalizeMortgageLegacyText(t *testing.T) {
	raw := `{"primary":{"balance":250000,"monthlyPayment":1500,"interestRate":6.5},"secondary":{"balance":0,"monthlyPayment":0,"interestRate":0}}`

	mortgage := NormalizeMortgage(nil, raw)
	if mortgage == nil {
		t.Fatal("expected mortgage, got nil")
	}
	if mortgage.Primary.Balance != 250000 {
		t.Errorf("primary balance = %v, expected 250000", mortgage.Primary.Balance)
	}
	if mortgage.Primary.Name != "primary" {
		t.Errorf("primary name = %q, expected primary", mortgage.Primary.Name)
	}
	if mortgage.Secondary.Balance != 0 {
		t.Errorf("secondary balance = %v, expected 0", mortgage.Secondary.Balance)
	}
}

func TestNormalizeMortgageDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"Nil field", nil},
		{"Undecodable text", "not json at all"},
		{"Empty text", ""},
		{"Empty object", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m := NormalizeMortgage(nil, tt.input); m != nil {
				t.Errorf("expected nil mortgage, got %+v", m)
			}
		})
	}
}

func TestNormalizeMortgageIdempotent(t *testing.T) {
	typed := &Mortgage{Primary: MortgageTranche{Name: "primary", Balance: 100000, MonthlyPayment: 900}}

	once := NormalizeMortgage(nil, typed)
	twice := NormalizeMortgage(nil, any(once))
	if twice != typed {
		t.Errorf("normalizing an already-typed mortgage changed it: %+v", twice)
	}
}

func TestNormalizeCashflow(t *testing.T) {
	record := NormalizeCashflow(nil, "cf-1", "proj-1",
		`[{"name":"Card","balance":"2500","monthlyPayment":75,"interestRate":22}]`,
		map[string]any{"primary": map[string]any{"balance": 180000.0, "monthlyPayment": 1200.0, "interestRate": 5.0}},
	)

	if record.ID != "cf-1" || record.ProjectID != "proj-1" {
		t.Errorf("identifiers not carried through: %+v", record)
	}
	if len(record.Debts) != 1 || record.Debts[0].Balance != 2500 {
		t.Errorf("debts not normalized: %+v", record.Debts)
	}
	if record.Mortgage == nil || record.Mortgage.Primary.Balance != 180000 {
		t.Errorf("mortgage not normalized: %+v", record.Mortgage)
	}
}

func TestAnnualization(t *testing.T) {
	tests := []struct {
		name     string
		record   IncomeRecord
		expected float64
	}{
		{"Monthly", IncomeRecord{Amount: 1000, Frequency: FrequencyMonthly}, 12000},
		{"Quarterly", IncomeRecord{Amount: 3000, Frequency: FrequencyQuarterly}, 12000},
		{"Annual", IncomeRecord{Amount: 80000, Frequency: FrequencyAnnual}, 80000},
		{"Custom with periods", IncomeRecord{Amount: 500, Frequency: FrequencyCustom, PeriodsPerYear: 26}, 13000},
		{"Custom without periods", IncomeRecord{Amount: 500, Frequency: FrequencyCustom}, 0},
		{"Missing frequency defaults to monthly", IncomeRecord{Amount: 100}, 1200},
		{"Unknown frequency", IncomeRecord{Amount: 100, Frequency: "weekly"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.record.Annualized()
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Annualized() = %v, expected %v", result, tt.expected)
			}
		})
	}
}
