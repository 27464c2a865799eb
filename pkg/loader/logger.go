package loader

// Logger provides a pluggable logging interface for loader operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information, such as every statement
	// before it is submitted. Only logged when debug mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of debug mode.
	Info(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of debug mode.
	Error(format string, args ...interface{})
}
