package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/alexbrainman/odbc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOperation struct {
	invocations int
	failUntil   int // fail while invocations < failUntil
	err         error
}

func (m *mockOperation) execute(_ context.Context) error {
	m.invocations++
	if m.invocations < m.failUntil {
		return m.err
	}
	return nil
}

func odbcError(state string) error {
	return &odbc.Error{APIName: "SQLDriverConnect", Diag: []odbc.DiagRecord{{State: state, Message: "test"}}}
}

func fastBackoff(attempts int) *ExponentialBackoff {
	return NewExponentialBackoff(attempts, WithInitialDelay(time.Millisecond), WithJitter(0))
}

func TestExecutor_SuccessOnFirstAttempt(t *testing.T) {
	op := &mockOperation{failUntil: 1}

	err := NewExecutor(NewODBCErrorClassifier(), fastBackoff(3)).Execute(context.Background(), op.execute)

	require.NoError(t, err)
	assert.Equal(t, 1, op.invocations)
}

func TestExecutor_SuccessAfterRetries(t *testing.T) {
	op := &mockOperation{failUntil: 3, err: odbcError("08001")}

	var retries []int
	executor := NewExecutor(NewODBCErrorClassifier(), fastBackoff(5)).
		WithOnRetry(func(attempt int, _ error, _ time.Duration) { retries = append(retries, attempt) })

	err := executor.Execute(context.Background(), op.execute)

	require.NoError(t, err)
	assert.Equal(t, 3, op.invocations)
	assert.Equal(t, []int{0, 1}, retries)
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	op := &mockOperation{failUntil: 100, err: odbcError("08S01")}

	err := NewExecutor(NewODBCErrorClassifier(), fastBackoff(2)).Execute(context.Background(), op.execute)

	require.Error(t, err)
	assert.Equal(t, 3, op.invocations, "initial attempt plus two retries")
}

func TestExecutor_FatalErrorNotRetried(t *testing.T) {
	op := &mockOperation{failUntil: 100, err: odbcError("28000")}

	err := NewExecutor(NewODBCErrorClassifier(), fastBackoff(5)).Execute(context.Background(), op.execute)

	require.Error(t, err)
	assert.Equal(t, 1, op.invocations)
}

func TestExecutor_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	op := &mockOperation{failUntil: 100, err: odbcError("08001")}

	err := NewExecutor(NewODBCErrorClassifier(), fastBackoff(5)).Execute(ctx, op.execute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, op.invocations)
}

func TestExecutor_WithOnRetryDoesNotModifyOriginal(t *testing.T) {
	original := NewExecutor(NewODBCErrorClassifier(), fastBackoff(1))
	clone := original.WithOnRetry(func(int, error, time.Duration) {})

	assert.Nil(t, original.onRetry)
	assert.NotNil(t, clone.onRetry)
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, fastBackoff(1)) })
	assert.Panics(t, func() { NewExecutor(NewODBCErrorClassifier(), nil) })
}

func TestODBCErrorClassifier_IsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"connection exception", odbcError("08001"), true},
		{"communication link failure", odbcError("08S01"), true},
		{"timeout expired", odbcError("HYT00"), true},
		{"vertica cannot connect now", odbcError("57V03"), true},
		{"invalid authorization", odbcError("28000"), false},
		{"syntax error", odbcError("42601"), false},
		{"wrapped odbc error", fmt.Errorf("ping: %w", odbcError("08006")), true},
		{"connection refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, true},
		{"message pattern", errors.New("Could not connect to server: Connection refused"), true},
		{"plain error", errors.New("data source name not found"), false},
	}

	classifier := NewODBCErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.IsTransient(tt.err))
		})
	}
}

func TestExponentialBackoff_NextDelay(t *testing.T) {
	b := NewExponentialBackoff(5,
		WithInitialDelay(100*time.Millisecond),
		WithMaxDelay(time.Second),
		WithJitter(0),
	)

	assert.Equal(t, 100*time.Millisecond, b.NextDelay(0))
	assert.Equal(t, 200*time.Millisecond, b.NextDelay(1))
	assert.Equal(t, 400*time.Millisecond, b.NextDelay(2))
	assert.Equal(t, time.Second, b.NextDelay(10), "capped at max delay")
	assert.Equal(t, 5, b.MaxAttempts())
}

func TestExponentialBackoff_Jitter(t *testing.T) {
	low := NewExponentialBackoff(1, WithInitialDelay(time.Second), WithJitter(0.1), WithJitterFunc(func() float64 { return 0 }))
	high := NewExponentialBackoff(1, WithInitialDelay(time.Second), WithJitter(0.1), WithJitterFunc(func() float64 { return 1 }))

	assert.Equal(t, 900*time.Millisecond, low.NextDelay(0))
	assert.Equal(t, 1100*time.Millisecond, high.NextDelay(0))
}
