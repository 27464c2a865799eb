package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/vvka-141/vertica-loader/pkg/loader"
)

type mockResult struct{ rows int64 }

func (r mockResult) LastInsertId() (int64, error) { return 0, errors.New("not supported") }
func (r mockResult) RowsAffected() (int64, error) { return r.rows, nil }

type mockSession struct {
	executed []string
	rows     int64
	failOn   string
	closed   bool
}

func (m *mockSession) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	if query == m.failOn {
		return nil, errors.New("ERROR 4566: Relation does not exist")
	}
	m.executed = append(m.executed, query)
	return mockResult{rows: m.rows}, nil
}

func (m *mockSession) Close() error {
	m.closed = true
	return nil
}

type mockConnector struct {
	session *mockSession
	err     error
	calls   int
}

func (m *mockConnector) Connect(_ context.Context) (loader.Session, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

func connectorFactory(c *mockConnector, gotDSN *string) func(string) (loader.Connector, error) {
	return func(dsn string) (loader.Connector, error) {
		if gotDSN != nil {
			*gotDSN = dsn
		}
		return c, nil
	}
}

type mockLogger struct {
	mu   sync.Mutex
	info []string
}

func (m *mockLogger) Verbose(_ string, _ ...interface{}) {}
func (m *mockLogger) Info(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.info = append(m.info, fmt.Sprintf(format, args...))
}
func (m *mockLogger) Error(_ string, _ ...interface{}) {}
