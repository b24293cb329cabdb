// Package constants provides shared constants for the marcolo metrics engine.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// QuartersPerYear is the number of quarters in a year
	QuartersPerYear = 4

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// NeverPayoffMonths is the sentinel returned when a debt's monthly payment
// does not cover its accruing interest. Callers must treat any value at or
// above this as "not payoff-able," never as a literal duration.
const NeverPayoffMonths = 999

// Entity mode constants
const (
	// ModePersonal selects the personal-finance ratio thresholds
	ModePersonal = "personal"

	// ModeBusiness selects the business ratio semantics (DSCR, operating margin)
	ModeBusiness = "business"
)

// Record frequency constants
const (
	// FrequencyMonthly annualizes with 12 periods per year
	FrequencyMonthly = "monthly"

	// FrequencyQuarterly annualizes with 4 periods per year
	FrequencyQuarterly = "quarterly"

	// FrequencyAnnual annualizes with 1 period per year
	FrequencyAnnual = "annual"

	// FrequencyCustom annualizes with an explicit periods-per-year count
	FrequencyCustom = "custom"
)

// Mortgage tranche names
const (
	// TranchePrimary is the first mortgage tranche on a cashflow record
	TranchePrimary = "primary"

	// TrancheSecondary is the second mortgage tranche on a cashflow record
	TrancheSecondary = "secondary"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultProfileFile is the default profile file name
	DefaultProfileFile = "profile.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// DateTimeLayout is the year-month format used for goal target dates and
// payoff projections.
const DateTimeLayout = "2006-01"
