package logging

import "github.com/vvka-141/vertica-loader/pkg/loader"

var (
	_ loader.Logger = (*ConsoleLogger)(nil)
	_ loader.Logger = (*NullLogger)(nil)
)

// NullLogger discards everything. `plan` uses it unless --debug is set, and
// tests use it where log output does not matter.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}
func (l *NullLogger) Info(format string, args ...interface{})    {}
func (l *NullLogger) Error(format string, args ...interface{})   {}
