// Package db connects to Vertica over ODBC and submits generated statements.
//
// ODBCConnector opens one dedicated session per run through database/sql and
// the github.com/alexbrainman/odbc driver. Establishing that session is
// retried on transient failures; statements are not. Executor runs the
// statements of a table sequentially and logs the affected row count of each.
package db
