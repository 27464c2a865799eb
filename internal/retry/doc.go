// Package retry retries establishing the database session when the failure
// looks transient: the server is restarting, the network dropped, or the
// ODBC driver reported a connection-class SQLSTATE.
//
// # Example Usage
//
//	executor := retry.NewExecutor(retry.NewODBCErrorClassifier(), retry.NewExponentialBackoff(3))
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return conn.PingContext(ctx)
//	})
//
// Statements produced by the loader are never retried: a failed COPY or
// COMMIT aborts the run.
package retry
