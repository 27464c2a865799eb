package load

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileSpec describes the physical layout of the delimited data files.
type FileSpec struct {
	// Delimiter separates values. Not escaped when rendered.
	Delimiter string

	// SkipHeader drops the first line of every file.
	SkipHeader bool

	// Format is prepended verbatim to the load clause.
	Format string

	// Quoted means values are enclosed in double quotes.
	Quoted bool

	// RejectedDir, when set, makes COPY write its exceptions and rejected
	// rows to per-file logs in this directory.
	RejectedDir string
}

// DefaultFileSpec returns a comma delimited, unquoted spec with a header row.
func DefaultFileSpec() FileSpec {
	return FileSpec{
		Delimiter:  ",",
		SkipHeader: true,
	}
}

// FormattedStatement renders the load-clause fragment of a COPY statement,
// for example "DELIMITER ',' SKIP 1 DIRECT".
func (s FileSpec) FormattedStatement() string {
	var b strings.Builder
	b.WriteString(s.Format)
	fmt.Fprintf(&b, "DELIMITER '%s'", s.Delimiter)
	if s.Quoted {
		b.WriteString(` ENCLOSED BY '"'`)
	}
	if s.SkipHeader {
		b.WriteString(" SKIP 1")
	}
	b.WriteString(" DIRECT")
	return b.String()
}

// Clause renders the load clause for one data file. It is FormattedStatement
// plus the EXCEPTIONS and REJECTED DATA targets when RejectedDir is set.
func (s FileSpec) Clause(dataFile string) string {
	stmt := s.FormattedStatement()
	if s.RejectedDir == "" {
		return stmt
	}

	source := "no_filename"
	if dataFile != "" {
		source = filepath.Base(dataFile)
	}
	dir := strings.TrimSuffix(s.RejectedDir, "/")
	return fmt.Sprintf("%s EXCEPTIONS '%s/exceptions-%s.log' REJECTED DATA '%s/rejected-%s.log'",
		stmt, dir, source, dir, source)
}
