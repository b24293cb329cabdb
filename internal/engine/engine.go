// Package engine orchestrates the metrics pipeline: it scopes the profile's
// record sets, runs them through normalization and aggregation, and produces
// a classified snapshot with recommendations.
package engine

import (
	"fmt"
	"time"

	"github.com/bdabianco/marcolo-metrics/internal/config"
	"github.com/bdabianco/marcolo-metrics/pkg/constants"
	"github.com/bdabianco/marcolo-metrics/pkg/datetime"
	"github.com/bdabianco/marcolo-metrics/pkg/debts"
	"github.com/bdabianco/marcolo-metrics/pkg/metrics"
	"github.com/bdabianco/marcolo-metrics/pkg/records"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is one full engine output: the snapshot, its classification, and
// the advisory list. A fresh Result replaces any previous one wholesale; the
// snapshot ID only labels a single response and carries no persistent
// identity.
type Result struct {
	SnapshotID      string                 `json:"snapshotId"`
	Mode            metrics.Mode           `json:"mode"`
	ProjectID       string                 `json:"projectId,omitempty"`
	GeneratedAt     time.Time              `json:"generatedAt"`
	Snapshot        metrics.Snapshot       `json:"snapshot"`
	Classifications metrics.Classification `json:"classifications"`
	Recommendations []string               `json:"recommendations"`
	DebtFreeDate    string                 `json:"debtFreeDate,omitempty"`
	Instruments     []debts.Instrument     `json:"instruments,omitempty"`
}

// Compute runs the full pipeline for a profile. The scope is explicit: a
// non-empty projectID restricts income, expense, debt, and goal figures to
// that project (assets stay user-level); an empty projectID sums across all
// projects. An unknown projectID is an error rather than a silent partial
// aggregate.
func Compute(logger *zap.Logger, profile *config.Profile, projectID string) (*Result, error) {
	return ComputeAt(logger, profile, projectID, time.Now())
}

// ComputeAt is Compute with an injectable clock for the payoff projection.
func ComputeAt(logger *zap.Logger, profile *config.Profile, projectID string, now time.Time) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	projects := profile.Projects
	if projectID != "" {
		project, ok := profile.FindProject(projectID)
		if !ok {
			return nil, fmt.Errorf("unknown project %q", projectID)
		}
		projects = []config.Project{*project}
	}

	var inputs metrics.Inputs
	var cashflows []records.CashflowRecord
	for _, project := range projects {
		inputs.Budgets = append(inputs.Budgets, project.BudgetSnapshot())
		if project.HasBudgetPlan() {
			inputs.BudgetPlansCount++
		}
		inputs.Goals = append(inputs.Goals, project.Goals...)
		for _, cashflow := range project.Cashflows {
			cashflows = append(cashflows, cashflow.Normalize(logger, project.ID))
		}
	}
	inputs.Assets = profile.Assets
	inputs.Portfolio = debts.Aggregate(logger, cashflows)

	snapshot := metrics.Compute(inputs)
	mode := metrics.Mode(profile.Mode)
	if mode == "" {
		mode = metrics.ModePersonal
	}

	result := &Result{
		SnapshotID:      uuid.NewString(),
		Mode:            mode,
		ProjectID:       projectID,
		GeneratedAt:     now,
		Snapshot:        snapshot,
		Classifications: metrics.Classify(snapshot, mode),
		Recommendations: metrics.Recommendations(snapshot, mode),
		Instruments:     inputs.Portfolio.Instruments,
	}

	if snapshot.DebtFreeMonths > 0 && snapshot.DebtFreeMonths < constants.NeverPayoffMonths {
		startMonth := now.Format(datetime.DateTimeLayout)
		if date, err := datetime.OffsetDate(startMonth, datetime.DateTimeLayout, snapshot.DebtFreeMonths); err == nil {
			result.DebtFreeDate = date
		}
	}

	logger.Debug(fmt.Sprintf("computed snapshot for %d project(s)", len(projects)),
		zap.String("op", "engine.ComputeAt"),
		zap.String("snapshotId", result.SnapshotID),
		zap.Int("debtFreeMonths", snapshot.DebtFreeMonths),
	)

	return result, nil
}
