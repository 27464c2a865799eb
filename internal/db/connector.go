package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexbrainman/odbc"
	"github.com/vvka-141/vertica-loader/internal/retry"
	"github.com/vvka-141/vertica-loader/pkg/loader"
)

// DriverName is the database/sql driver registered by github.com/alexbrainman/odbc.
const DriverName = "odbc"

// ODBCConnector opens a single dedicated ODBC session, retrying transient
// connection failures.
type ODBCConnector struct {
	dsn     string
	logger  loader.Logger
	backoff loader.BackoffStrategy
	open    func(driverName, dataSourceName string) (*sql.DB, error)
}

// NewODBCConnector creates a connector for dsn. A dsn containing '=' is used
// as a full ODBC connection string, otherwise it names a data source from
// odbc.ini.
func NewODBCConnector(dsn string, logger loader.Logger) *ODBCConnector {
	return &ODBCConnector{
		dsn:    dsn,
		logger: logger,
		backoff: retry.NewExponentialBackoff(loader.DefaultConnectMaxAttempts,
			retry.WithInitialDelay(loader.DefaultConnectInitialDelay),
			retry.WithMaxDelay(loader.DefaultConnectMaxDelay),
		),
		open: sql.Open,
	}
}

// NewConnector is the factory the load service uses to reach the database.
func NewConnector(dsn string, logger loader.Logger) (loader.Connector, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("dsn is required: %w", loader.ErrInvalidConfig)
	}
	return NewODBCConnector(dsn, logger), nil
}

// ConnectionString turns a data source name into an ODBC connection string.
func ConnectionString(dsn string) string {
	if strings.Contains(dsn, "=") {
		return dsn
	}
	return "DSN=" + dsn
}

// Connect opens the session. The pool is limited to one connection so every
// statement, including COMMIT, runs in the same database session.
func (c *ODBCConnector) Connect(ctx context.Context) (loader.Session, error) {
	pool, err := c.open(DriverName, ConnectionString(c.dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open ODBC driver: %w: %w", loader.ErrConnectionFailed, err)
	}
	pool.SetMaxOpenConns(1)

	executor := retry.NewExecutor(retry.NewODBCErrorClassifier(), c.backoff).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			c.logger.Info("Connection attempt %d to %s failed, retrying in %s: %v",
				attempt+1, c.dsn, delay.Round(time.Millisecond), err)
		})

	var conn *sql.Conn
	err = executor.Execute(ctx, func(ctx context.Context) error {
		cn, err := pool.Conn(ctx)
		if err != nil {
			return err
		}
		if err := cn.PingContext(ctx); err != nil {
			cn.Close()
			return err
		}
		conn = cn
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, c.dsn)
	}

	c.logger.Verbose("Connected to %s", c.dsn)
	return &session{Conn: conn, pool: pool}, nil
}

// session pairs the dedicated connection with the pool that owns it.
type session struct {
	*sql.Conn
	pool *sql.DB
}

func (s *session) Close() error {
	return errors.Join(s.Conn.Close(), s.pool.Close())
}

// wrapConnectionError wraps raw ODBC connection errors with actionable guidance.
func wrapConnectionError(err error, dsn string) error {
	var odbcErr *odbc.Error
	if errors.As(err, &odbcErr) {
		for _, rec := range odbcErr.Diag {
			switch {
			case rec.State == "IM002":
				return fmt.Errorf(`data source "%s" not found

Possible causes:
  - No [%s] section in odbc.ini (check: odbcinst -q -s)
  - ODBCINI points at a different file
  - Use --dsn with a full connection string, e.g. "Driver=Vertica;Servername=host;Database=db"

Original error: %w: %w`, dsn, dsn, loader.ErrConnectionFailed, err)

			case rec.State == "28000":
				return fmt.Errorf(`authentication failed for data source "%s"

Possible causes:
  - Wrong UID/PWD in odbc.ini
  - User does not have access to the database

Original error: %w: %w`, dsn, loader.ErrConnectionFailed, err)
			}
		}
	}

	return fmt.Errorf("failed to connect to %s: %w: %w", dsn, loader.ErrConnectionFailed, err)
}
