package loader

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := service.Run(ctx, job)
//	if errors.Is(err, loader.ErrMissingDataFile) {
//	    // The partition for one of the dates has not landed yet
//	}
var (
	// ErrInvalidConfig indicates the loader document or job settings are malformed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidDateFormat indicates a date string does not match the date format.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidRange indicates the end date precedes the start date.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrMissingDataFile indicates a resolved data file does not exist.
	ErrMissingDataFile = errors.New("data file not found")

	// ErrConnectionFailed indicates the database connection could not be established.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrExecutionFailed indicates a generated statement failed on the database.
	ErrExecutionFailed = errors.New("execution failed")
)

// MissingDataFileError reports the data file that was absent and the table
// that could not be loaded because of it.
type MissingDataFileError struct {
	Path  string
	Table string
}

func (e *MissingDataFileError) Error() string {
	return fmt.Sprintf("path %s does not exist, %s table cannot be loaded", e.Path, e.Table)
}

// Unwrap lets errors.Is match ErrMissingDataFile.
func (e *MissingDataFileError) Unwrap() error {
	return ErrMissingDataFile
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrInvalidDateFormat),
		errors.Is(err, ErrInvalidRange):
		return ExitConfigError
	case errors.Is(err, ErrMissingDataFile):
		return ExitMissingDataFile
	case errors.Is(err, ErrExecutionFailed):
		return ExitExecutionFailed
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts 1 arg(s)",
	"missing required argument",
	"invalid argument",
	"required flag",
}
