package loader

import (
	"context"
	"database/sql"
)

// StatementRunner executes a single SQL statement without returning rows.
// *sql.Conn, *sql.DB and *sql.Tx all satisfy it.
type StatementRunner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Session is a dedicated database session. Every statement of a run goes
// through the same session so that the emitted COMMIT statements apply to
// the work that preceded them.
type Session interface {
	StatementRunner

	// Close returns the session to its pool.
	Close() error
}

// Connector opens a database session for a data source name.
type Connector interface {
	// Connect establishes a session. The caller must Close it when done.
	Connect(ctx context.Context) (Session, error)
}
