package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vvka-141/vertica-loader/pkg/loader"
)

const timestampLayout = "2006-01-02 15:04:05,000"

// ConsoleLogger writes log lines of the form
//
//	2017-08-17 02:00:00,123 - vertica-loader - INFO - Loading foo
//
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
	now     func() time.Time
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger that writes to stderr.
// If verbose is true, Verbose() calls produce DEBUG lines.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, verbose)
}

// NewWriterLogger creates a ConsoleLogger that writes to out.
func NewWriterLogger(out io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		out:     out,
		verbose: verbose,
		now:     time.Now,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("DEBUG", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args)
}

func (l *ConsoleLogger) write(level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s - %s - %s - %s\n", l.now().Format(timestampLayout), loader.Name, level, msg)
}
