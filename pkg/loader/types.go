package loader

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobConfig contains all parameters needed for a load run.
type JobConfig struct {
	// RunID identifies the run in log output
	RunID uuid.UUID

	// ConfigPath is the loader document describing the tables to load
	ConfigPath string

	// StartDate is the first (or only) date to load, formatted with DateFormat
	StartDate string

	// EndDate is the last date to load. Empty loads StartDate only.
	EndDate string

	// DateFormat is the strftime format of StartDate and EndDate
	DateFormat string

	// DSN is the ODBC data source name
	DSN string

	// Timeout bounds the entire run. Zero disables it.
	Timeout time.Duration

	// Debug enables statement-level logging
	Debug bool
}

// Validate checks if the JobConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *JobConfig) Validate() error {
	var errs []error

	if c.ConfigPath == "" {
		errs = append(errs, fmt.Errorf("ConfigPath is required: %w", ErrInvalidConfig))
	}

	if c.StartDate == "" {
		errs = append(errs, fmt.Errorf("StartDate is required: %w", ErrInvalidConfig))
	}

	if c.DateFormat == "" {
		errs = append(errs, fmt.Errorf("DateFormat is required: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Summary reports what a load run did.
type Summary struct {
	Tables       int
	Statements   int
	RowsAffected int64
}

// TablePlan is the ordered statement list generated for one table.
type TablePlan struct {
	Table      string
	Statements []string
}
