// Package config defines the data structures for a user's financial profile
// and includes functions for loading and validating it.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/bdabianco/marcolo-metrics/pkg/constants"
	"github.com/bdabianco/marcolo-metrics/pkg/datetime"
	"github.com/bdabianco/marcolo-metrics/pkg/records"
	"github.com/bdabianco/marcolo-metrics/pkg/validation"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Profile holds the already-fetched record sets the metrics engine computes
// over, plus runtime settings. It mirrors what the dashboard's persistence
// layer supplies per user.
type Profile struct {
	Mode     string
	Projects []Project
	Assets   []records.AssetRecord
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Project is one planning project: its budget snapshot (if computed), raw
// income/expense records, savings goals, and cashflow records.
type Project struct {
	ID        string
	Name      string
	Budget    *Budget
	Incomes   []records.IncomeRecord
	Expenses  []records.ExpenseRecord
	Goals     []records.SavingsGoal
	Cashflows []Cashflow
}

// Budget is the stored aggregated budget snapshot for a project.
type Budget struct {
	GrossIncome   float64
	NetIncome     float64
	TotalExpenses float64
}

// Cashflow is a raw cashflow row. The Debts and Mortgage fields stay
// loosely typed here because legacy rows encode them as serialized JSON
// text; the records normalizer resolves the ambiguity. Stored totals are
// carried but never trusted.
type Cashflow struct {
	ID                      string
	Debts                   any
	Mortgage                any
	TotalDebtBalance        any
	TotalMonthlyDebtPayment any
}

// Normalize converts the raw cashflow row into a typed record.
func (c Cashflow) Normalize(logger *zap.Logger, projectID string) records.CashflowRecord {
	return records.NormalizeCashflow(logger, c.ID, projectID, c.Debts, c.Mortgage)
}

// LoadProfile takes a file path as input and loads the YAML-formatted
// profile there.
func LoadProfile(profilePath string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading profile file, %s", err)
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	profile.EnsureIDs()
	return &profile, nil
}

// LoadProfileFromReader loads a YAML-formatted profile from a reader.
func LoadProfileFromReader(r io.Reader) (*Profile, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading profile data, %s", err)
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	profile.EnsureIDs()
	return &profile, nil
}

// EnsureIDs backfills missing project and record identifiers so downstream
// consumers can always address them.
func (p *Profile) EnsureIDs() {
	for i := range p.Projects {
		project := &p.Projects[i]
		if project.ID == "" {
			project.ID = uuid.NewString()
		}
		for j := range project.Incomes {
			if project.Incomes[j].ID == "" {
				project.Incomes[j].ID = uuid.NewString()
			}
		}
		for j := range project.Expenses {
			if project.Expenses[j].ID == "" {
				project.Expenses[j].ID = uuid.NewString()
			}
		}
		for j := range project.Goals {
			if project.Goals[j].ID == "" {
				project.Goals[j].ID = uuid.NewString()
			}
			if project.Goals[j].ProjectID == "" {
				project.Goals[j].ProjectID = project.ID
			}
		}
		for j := range project.Cashflows {
			if project.Cashflows[j].ID == "" {
				project.Cashflows[j].ID = uuid.NewString()
			}
		}
	}
	for i := range p.Assets {
		if p.Assets[i].ID == "" {
			p.Assets[i].ID = uuid.NewString()
		}
	}
}

// FindProject returns the project with the given ID.
func (p *Profile) FindProject(id string) (*Project, bool) {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], true
		}
	}
	return nil, false
}

// BudgetSnapshot returns the project's aggregated budget figures. A stored
// budget snapshot wins; otherwise the figures are re-derived from the raw
// income and expense records via annualization. When records carry only one
// of gross or net income, the other falls back to the known total.
func (p *Project) BudgetSnapshot() records.BudgetSnapshot {
	if p.Budget != nil {
		return records.BudgetSnapshot{
			ProjectID:     p.ID,
			GrossIncome:   p.Budget.GrossIncome,
			NetIncome:     p.Budget.NetIncome,
			TotalExpenses: p.Budget.TotalExpenses,
		}
	}

	var gross, net, expenses float64
	for _, income := range p.Incomes {
		annual := income.Annualized()
		if income.GrossIncome {
			gross += annual
		} else {
			net += annual
		}
	}
	if gross == 0 {
		gross = net
	}
	if net == 0 {
		net = gross
	}
	for _, expense := range p.Expenses {
		expenses += expense.Annualized()
	}

	return records.BudgetSnapshot{
		ProjectID:     p.ID,
		GrossIncome:   gross,
		NetIncome:     net,
		TotalExpenses: expenses,
	}
}

// HasBudgetPlan reports whether the project carries budget data in stored or
// derivable form.
func (p *Project) HasBudgetPlan() bool {
	return p.Budget != nil || len(p.Incomes) > 0 || len(p.Expenses) > 0
}

// Validate performs general validation of the profile and returns warnings.
// Warnings never block a computation; degenerate values resolve to zero
// contributions downstream.
func (p *Profile) Validate() []string {
	return p.ValidateWithFixedTime(time.Now())
}

// ValidateWithFixedTime validates the profile using a fixed time for goal
// target-date checks.
func (p *Profile) ValidateWithFixedTime(fixedTime time.Time) []string {
	var warnings []string

	if err := validation.ValidateMode(p.Mode); err != nil {
		warnings = append(warnings, err.Error())
	}

	seen := make(map[string]struct{})
	for _, project := range p.Projects {
		if _, dup := seen[project.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("duplicate project ID %q", project.ID))
		}
		seen[project.ID] = struct{}{}

		for _, income := range project.Incomes {
			if err := validation.ValidateFrequency(string(income.Frequency)); err != nil {
				warnings = append(warnings, fmt.Sprintf("income %q: %v", income.Name, err))
			}
			if income.Frequency == records.FrequencyCustom && income.PeriodsPerYear <= 0 {
				warnings = append(warnings, fmt.Sprintf("income %q: custom frequency without periodsPerYear contributes nothing", income.Name))
			}
		}
		for _, expense := range project.Expenses {
			if err := validation.ValidateFrequency(string(expense.Frequency)); err != nil {
				warnings = append(warnings, fmt.Sprintf("expense %q: %v", expense.Name, err))
			}
		}

		for _, goal := range project.Goals {
			if goal.TargetAmount > 0 && goal.CurrentAmount > goal.TargetAmount {
				warnings = append(warnings, fmt.Sprintf("goal %q: current amount exceeds target", goal.Name))
			}
			if goal.TargetDate != "" {
				months, err := datetime.MonthsUntil(fixedTime, goal.TargetDate)
				if err != nil {
					warnings = append(warnings, fmt.Sprintf("goal %q: unparsable target date %q (expected %s)",
						goal.Name, goal.TargetDate, constants.DateTimeLayout))
				} else if months > 0 && goal.MonthlyContribution > 0 {
					needed := goal.TargetAmount - goal.CurrentAmount
					if projected := goal.MonthlyContribution * float64(months); projected < needed {
						warnings = append(warnings, fmt.Sprintf("goal %q: monthly contribution will not reach the target by %s",
							goal.Name, goal.TargetDate))
					}
				}
			}
		}
	}

	for _, asset := range p.Assets {
		if asset.Value < 0 {
			warnings = append(warnings, fmt.Sprintf("asset %q: negative value", asset.Name))
		}
	}

	return warnings
}
