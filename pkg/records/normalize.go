package records

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CoerceNumber converts a loosely-typed stored value into a float64.
// Numeric strings are parsed exactly via decimal before conversion;
// non-numeric or missing values coerce to 0, never an error.
func CoerceNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return 0
		}
		return d.InexactFloat64()
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return 0
		}
		return d.InexactFloat64()
	default:
		return 0
	}
}

// NormalizeDebtList converts a raw debts field into a typed list. The field
// may already be structured (a typed slice or a slice of maps) or may be a
// legacy row's serialized JSON text. Decode failure substitutes the empty
// default; normalizing an already-typed value is a no-op.
func NormalizeDebtList(logger *zap.Logger, raw any) []DebtEntry {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch v := raw.(type) {
	case nil:
		return nil
	case []DebtEntry:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		var decoded []map[string]any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
			logger.Debug("substituting empty debt list for undecodable row",
				zap.String("op", "records.NormalizeDebtList"),
				zap.Error(err),
			)
			return nil
		}
		return debtsFromMaps(decoded)
	case []any:
		maps := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				maps = append(maps, m)
			}
		}
		return debtsFromMaps(maps)
	case []map[string]any:
		return debtsFromMaps(v)
	default:
		logger.Debug("substituting empty debt list for unrecognized field shape",
			zap.String("op", "records.NormalizeDebtList"),
		)
		return nil
	}
}

func debtsFromMaps(maps []map[string]any) []DebtEntry {
	if len(maps) == 0 {
		return nil
	}
	debts := make([]DebtEntry, 0, len(maps))
	for _, m := range maps {
		debts = append(debts, DebtEntry{
			Name:           stringField(m, "name"),
			Balance:        numberField(m, "balance"),
			MonthlyPayment: numberField(m, "monthlyPayment", "payment"),
			InterestRate:   numberField(m, "interestRate", "rate"),
		})
	}
	return debts
}

// NormalizeMortgage converts a raw mortgage field into a typed structure.
// The field may be structured or a legacy serialized JSON object; decode
// failure substitutes a nil mortgage. An entirely absent mortgage and one
// with both tranches at zero balance are equivalent downstream.
func NormalizeMortgage(logger *zap.Logger, raw any) *Mortgage {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch v := raw.(type) {
	case nil:
		return nil
	case *Mortgage:
		return v
	case Mortgage:
		return &v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		var decoded map[string]any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
			logger.Debug("substituting empty mortgage for undecodable row",
				zap.String("op", "records.NormalizeMortgage"),
				zap.Error(err),
			)
			return nil
		}
		return mortgageFromMap(decoded)
	case map[string]any:
		return mortgageFromMap(v)
	default:
		logger.Debug("substituting empty mortgage for unrecognized field shape",
			zap.String("op", "records.NormalizeMortgage"),
		)
		return nil
	}
}

func mortgageFromMap(m map[string]any) *Mortgage {
	if len(m) == 0 {
		return nil
	}
	return &Mortgage{
		Primary:   trancheFromField(m, "primary"),
		Secondary: trancheFromField(m, "secondary"),
	}
}

func trancheFromField(m map[string]any, key string) MortgageTranche {
	raw, ok := lookupField(m, key)
	if !ok {
		return MortgageTranche{Name: key}
	}
	tm, ok := raw.(map[string]any)
	if !ok {
		return MortgageTranche{Name: key}
	}
	tranche := MortgageTranche{
		Name:           stringField(tm, "name"),
		Balance:        numberField(tm, "balance"),
		MonthlyPayment: numberField(tm, "monthlyPayment", "payment"),
		InterestRate:   numberField(tm, "interestRate", "rate"),
	}
	if tranche.Name == "" {
		tranche.Name = key
	}
	return tranche
}

// NormalizeCashflow builds a typed cashflow record from loosely-typed debts
// and mortgage fields. Stored total-debt figures on the raw row are dropped
// here; the debt aggregator recomputes them from the instrument list.
func NormalizeCashflow(logger *zap.Logger, id, projectID string, debts, mortgage any) CashflowRecord {
	return CashflowRecord{
		ID:        id,
		ProjectID: projectID,
		Debts:     NormalizeDebtList(logger, debts),
		Mortgage:  NormalizeMortgage(logger, mortgage),
	}
}

func lookupField(m map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			return v, true
		}
		// Stored rows are not consistent about key casing.
		for k, v := range m {
			if strings.EqualFold(k, key) {
				return v, true
			}
		}
	}
	return nil, false
}

func stringField(m map[string]any, keys ...string) string {
	raw, ok := lookupField(m, keys...)
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}

func numberField(m map[string]any, keys ...string) float64 {
	raw, ok := lookupField(m, keys...)
	if !ok {
		return 0
	}
	return CoerceNumber(raw)
}
