package retry

import (
	"context"
	"time"

	"github.com/vvka-141/vertica-loader/pkg/loader"
)

// Executor orchestrates retry attempts with backoff and error classification.
// Safe for concurrent use; WithOnRetry returns a copy.
type Executor struct {
	classifier loader.ErrorClassifier
	strategy   loader.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor.
// Panics if classifier or strategy is nil.
func NewExecutor(classifier loader.ErrorClassifier, strategy loader.BackoffStrategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// WithOnRetry returns a new Executor that calls callback before each retry.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs operation, retrying transient failures until the strategy's
// attempts are used up or ctx is done. It returns the last error.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	lastErr := operation(ctx)

	for attempt := 0; lastErr != nil && attempt < e.strategy.MaxAttempts(); attempt++ {
		if !e.classifier.IsTransient(lastErr) {
			return lastErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		lastErr = operation(ctx)
	}

	return lastErr
}
