// Package output provides utilities for formatting and displaying computed
// metrics results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bdabianco/marcolo-metrics/internal/engine"
	"github.com/bdabianco/marcolo-metrics/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type row struct {
	Metric string
	Value  string
	Band   string
}

func buildRows(result *engine.Result) []row {
	s := result.Snapshot
	c := result.Classifications

	rows := []row{
		{"Total annual income", format.Currency(s.TotalAnnualIncome), ""},
		{"Total annual expenses", format.Currency(s.TotalAnnualExpenses), ""},
		{"Annual surplus", format.Currency(s.AnnualSurplus), ""},
		{"Savings rate", format.Percent(s.SavingsRate), string(c.SavingsRate)},
		{"Monthly gross income", format.Currency(s.MonthlyGrossIncome), ""},
		{"Monthly debt payment", format.Currency(s.TotalMonthlyDebtPayment), ""},
		{"Debt-to-income", format.Percent(s.DebtToIncomeRatio), string(c.DebtToIncome)},
		{"Total debt", format.Currency(s.TotalDebtBalance), ""},
		{"Total assets", format.Currency(s.TotalAssets), ""},
		{"Net worth", format.Currency(s.NetWorth), ""},
		{"Debt-to-asset", format.Percent(s.DebtToAssetRatio), string(c.DebtToAsset)},
		{"Savings progress", format.Percent(s.SavingsProgress), ""},
		{"Debt-free in", format.PayoffMonths(s.DebtFreeMonths), ""},
	}
	if result.Mode == "business" {
		rows = append(rows, row{"Debt service coverage", format.Ratio(s.DebtServiceCoverage), string(c.DebtToIncome)})
	}
	return rows
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *engine.Result) {
	p := message.NewPrinter(language.English)

	scope := "all projects"
	if result.ProjectID != "" {
		scope = fmt.Sprintf("project %s", result.ProjectID)
	}
	_, _ = p.Printf("--- Financial metrics for %s (%s mode) ---\n", scope, result.Mode)
	fmt.Printf("Metric                 | Value         | Rating\n")
	fmt.Printf("______                 | _____         | ______\n")
	for _, r := range buildRows(result) {
		fmt.Printf("%-22s | %-13s | %s\n", r.Metric, r.Value, r.Band)
	}
	if result.DebtFreeDate != "" {
		fmt.Printf("\nProjected debt-free date: %s\n", result.DebtFreeDate)
	}
	if len(result.Recommendations) > 0 {
		fmt.Printf("\nRecommendations:\n")
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *engine.Result) {
	fmt.Print(CsvString(result))
}

// CsvString renders the CSV output as a string.
func CsvString(result *engine.Result) string {
	var builder strings.Builder
	builder.WriteString("\"metric\",\"value\",\"rating\"\n")
	for _, r := range buildRows(result) {
		builder.WriteString(fmt.Sprintf("%q,%q,%q\n", r.Metric, r.Value, r.Band))
	}
	return builder.String()
}

// JSONFormat outputs the full result as indented JSON.
func JSONFormat(result *engine.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
