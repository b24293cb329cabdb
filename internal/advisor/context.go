// Package advisor serializes a computed metrics result into the contextual
// document the chat advisor receives. Prompt construction itself happens in
// the advisor service; this package only owns the snapshot serialization
// contract.
package advisor

import (
	"encoding/json"
	"fmt"

	"github.com/bdabianco/marcolo-metrics/internal/engine"
	"github.com/bdabianco/marcolo-metrics/pkg/format"
	"github.com/bdabianco/marcolo-metrics/pkg/metrics"
)

// Context is the advisor-facing view of one metrics result. Field order is
// fixed so the serialized document is deterministic for identical inputs.
type Context struct {
	Mode            metrics.Mode           `json:"mode"`
	ProjectID       string                 `json:"projectId,omitempty"`
	Snapshot        metrics.Snapshot       `json:"snapshot"`
	Classifications metrics.Classification `json:"classifications"`
	Recommendations []string               `json:"recommendations"`
	DebtFreeDate    string                 `json:"debtFreeDate,omitempty"`
	Summary         string                 `json:"summary"`
}

// BuildContext assembles the advisor context for a result.
func BuildContext(result *engine.Result) Context {
	return Context{
		Mode:            result.Mode,
		ProjectID:       result.ProjectID,
		Snapshot:        result.Snapshot,
		Classifications: result.Classifications,
		Recommendations: append([]string(nil), result.Recommendations...),
		DebtFreeDate:    result.DebtFreeDate,
		Summary:         summarize(result),
	}
}

// Marshal renders the context as JSON for inclusion in the advisor's
// conversation context.
func Marshal(result *engine.Result) ([]byte, error) {
	data, err := json.MarshalIndent(BuildContext(result), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize advisor context: %w", err)
	}
	return data, nil
}

func summarize(result *engine.Result) string {
	s := result.Snapshot
	return fmt.Sprintf("Net worth %s; annual surplus %s (savings rate %s); debt-to-income %s; debt payoff horizon: %s.",
		format.Currency(s.NetWorth),
		format.Currency(s.AnnualSurplus),
		format.Percent(s.SavingsRate),
		format.Percent(s.DebtToIncomeRatio),
		format.PayoffMonths(s.DebtFreeMonths),
	)
}
