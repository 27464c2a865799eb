package loader

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Load completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid loader document, dates or flags
	ExitConnectionError = 11 // Failed to connect to the database
	ExitExecutionFailed = 13 // SQL execution failed
	ExitMissingDataFile = 14 // A data file for one of the dates is missing
)

const (
	// Name identifies the loader in log lines.
	Name = "vertica-loader"

	// UpdatedBy is written to last_updated.updated_by for every loaded table.
	UpdatedBy = "Vertica-CSV-Loader"

	// DefaultDateFormat is the strftime format used for --start-date and --end-date.
	DefaultDateFormat = "%Y-%m-%d"

	// DefaultDSN is the ODBC data source used when neither --dsn nor
	// VERTICA_LOADER_DSN is set.
	DefaultDSN = "vertica"

	// DSNEnvVar overrides DefaultDSN.
	DSNEnvVar = "VERTICA_LOADER_DSN"

	// MaxErrorPreviewLength is the maximum number of characters of a failed
	// statement quoted in error messages.
	MaxErrorPreviewLength = 200
)

// Connection retry defaults. Only establishing the ODBC session is retried;
// generated statements are submitted exactly once.
const (
	DefaultConnectMaxAttempts  = 3
	DefaultConnectInitialDelay = 500 * time.Millisecond
	DefaultConnectMaxDelay     = 30 * time.Second
)
