package db

import (
	"context"
	"fmt"

	"github.com/vvka-141/vertica-loader/pkg/loader"
)

// Executor submits generated statements, one at a time and in order, over a
// single session.
type Executor struct {
	runner loader.StatementRunner
	logger loader.Logger
}

// NewExecutor creates an Executor. Panics if runner or logger is nil.
func NewExecutor(runner loader.StatementRunner, logger loader.Logger) *Executor {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Executor{runner: runner, logger: logger}
}

// Execute runs statements in order and stops at the first failure. It
// returns the number of rows the statements reported as affected.
func (e *Executor) Execute(ctx context.Context, statements []string) (int64, error) {
	var total int64

	for i, stmt := range statements {
		e.logger.Verbose("%s", stmt)

		result, err := e.runner.ExecContext(ctx, stmt)
		if err != nil {
			return total, fmt.Errorf("statement %d of %d failed: %s: %w: %w",
				i+1, len(statements), preview(stmt), loader.ErrExecutionFailed, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			rows = -1
		}
		if rows > 0 {
			total += rows
		}
		e.logger.Info("Copied %d rows", rows)
	}

	return total, nil
}

func preview(stmt string) string {
	if len(stmt) <= loader.MaxErrorPreviewLength {
		return stmt
	}
	return stmt[:loader.MaxErrorPreviewLength] + "..."
}
