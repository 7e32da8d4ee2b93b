// Package constants provides shared constants for the depositmax application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DepositThreshold is the minimum deposit considered a real allocation;
	// solver results below it are treated as zero
	DepositThreshold = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for rate files (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// AccessCodeEnvVar is the environment variable holding the shared access code
	AccessCodeEnvVar = "DEPOSITMAX_ACCESS_CODE"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// MaxTiersPerAccount is the number of rate/amount column pairs in the
	// interest rate CSV layout
	MaxTiersPerAccount = 6
)

// Optimization defaults
const (
	// DefaultInvestmentAmount is the investment used when none is configured
	DefaultInvestmentAmount = 100000.0
)
