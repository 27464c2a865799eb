package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexbrainman/odbc"
	"github.com/vvka-141/vertica-loader/internal/retry"
)

type logEntry struct {
	level string
	msg   string
}

type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *captureLogger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: fmt.Sprintf(format, args...)})
}

func (l *captureLogger) Verbose(format string, args ...interface{}) { l.log("DEBUG", format, args...) }
func (l *captureLogger) Info(format string, args ...interface{})    { l.log("INFO", format, args...) }
func (l *captureLogger) Error(format string, args ...interface{})   { l.log("ERROR", format, args...) }

func (l *captureLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e.msg)
		}
	}
	return out
}

// fakeDriver fails the first failures opens with err, then hands out
// connections that accept every statement.
type fakeDriver struct {
	failures int32
	err      error
	opens    atomic.Int32
}

func (d *fakeDriver) Open(string) (driver.Conn, error) {
	if n := d.opens.Add(1); n <= d.failures {
		return nil, d.err
	}
	return &fakeConn{}, nil
}

type fakeConn struct{}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}
func (c *fakeConn) Close() error              { return nil }
func (c *fakeConn) Begin() (driver.Tx, error) { return nil, errors.New("transactions not supported") }

func (c *fakeConn) ExecContext(_ context.Context, _ string, _ []driver.NamedValue) (driver.Result, error) {
	return driver.RowsAffected(1), nil
}

// newTestConnector returns a connector backed by d with millisecond backoff.
func newTestConnector(t *testing.T, d *fakeDriver, logger *captureLogger) (*ODBCConnector, *string) {
	t.Helper()
	name := "fakeodbc-" + t.Name()
	sql.Register(name, d)

	var gotDSN string
	c := NewODBCConnector("vertica", logger)
	c.open = func(_ string, dataSourceName string) (*sql.DB, error) {
		gotDSN = dataSourceName
		return sql.Open(name, dataSourceName)
	}
	c.backoff = retry.NewExponentialBackoff(3, retry.WithInitialDelay(time.Millisecond), retry.WithJitter(0))
	return c, &gotDSN
}

func odbcError(state, msg string) error {
	return &odbc.Error{APIName: "SQLDriverConnect", Diag: []odbc.DiagRecord{{State: state, Message: msg}}}
}
