package retry

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/alexbrainman/odbc"
)

// ODBCErrorClassifier implements loader.ErrorClassifier for errors raised
// while opening an ODBC session to Vertica.
type ODBCErrorClassifier struct{}

// NewODBCErrorClassifier creates a new ODBC error classifier.
func NewODBCErrorClassifier() *ODBCErrorClassifier {
	return &ODBCErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *ODBCErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var odbcErr *odbc.Error
	if errors.As(err, &odbcErr) {
		for _, rec := range odbcErr.Diag {
			if isTransientState(rec.State) {
				return true
			}
		}
	}

	if isNetworkError(err) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// isTransientState checks a SQLSTATE for connection and timeout classes.
func isTransientState(state string) bool {
	switch {
	case strings.HasPrefix(state, "08"): // connection exception
		return true
	case state == "HYT00", state == "HYT01": // timeout expired
		return true
	case state == "57V03": // Vertica: cannot connect now
		return true
	}
	return false
}

func isNetworkError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() || dnsErr.Timeout()
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return true
		}
		return errors.Is(opErr.Err, syscall.ECONNREFUSED) ||
			errors.Is(opErr.Err, syscall.ECONNRESET) ||
			errors.Is(opErr.Err, syscall.ENETUNREACH) ||
			errors.Is(opErr.Err, syscall.EHOSTUNREACH)
	}

	return false
}

var transientPatterns = []string{
	"connection refused",
	"connection reset",
	"could not connect to server",
	"network is unreachable",
	"i/o timeout",
	"broken pipe",
	"too many connections",
}
