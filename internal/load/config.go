package load

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vertica-loader/pkg/loader"
)

// FileChecker reports whether a data file is present on local storage.
// filesystem.FileSystemProvider satisfies it.
type FileChecker interface {
	Exists(path string) bool
}

// LoadConfig is one table's load policy together with the dates it covers.
type LoadConfig struct {
	// Table is the target table, used unquoted.
	Table string

	// Path is the data file template; {date} is replaced per date.
	Path string

	// Fields is an optional column list template. {date} and {path} are
	// replaced per date. Empty means COPY without a column list.
	Fields string

	FileSpec FileSpec

	// Truncate empties the table once before any date is loaded.
	Truncate bool

	DeleteBeforeInsert DeletePolicy

	// Dates are loaded in order. The slice is shared with the caller and
	// never modified.
	Dates []string
}

// Option configures a LoadConfig built by NewLoadConfig.
type Option func(*LoadConfig)

// WithFields sets the column list template.
func WithFields(fields string) Option {
	return func(c *LoadConfig) { c.Fields = fields }
}

// WithFileSpec replaces the default file spec.
func WithFileSpec(spec FileSpec) Option {
	return func(c *LoadConfig) { c.FileSpec = spec }
}

// WithTruncate sets the truncate flag.
func WithTruncate(truncate bool) Option {
	return func(c *LoadConfig) { c.Truncate = truncate }
}

// WithDeleteBeforeInsert sets the delete policy. A nil policy means NoDelete.
func WithDeleteBeforeInsert(policy DeletePolicy) Option {
	return func(c *LoadConfig) {
		if policy == nil {
			policy = NoDelete{}
		}
		c.DeleteBeforeInsert = policy
	}
}

// NewLoadConfig creates a LoadConfig with the defaults: truncate enabled,
// no delete before insert, no column list and DefaultFileSpec.
func NewLoadConfig(table, path string, dates []string, options ...Option) *LoadConfig {
	c := &LoadConfig{
		Table:              table,
		Path:               path,
		FileSpec:           DefaultFileSpec(),
		Truncate:           true,
		DeleteBeforeInsert: NoDelete{},
		Dates:              dates,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// GenerateSQL returns the ordered statements that load every date of c.
//
// A missing data file for any date fails the whole table with a
// *loader.MissingDataFileError and no statements.
func (c *LoadConfig) GenerateSQL(files FileChecker, logger loader.Logger) ([]string, error) {
	var statements []string

	if c.Truncate {
		statements = append(statements, fmt.Sprintf("TRUNCATE TABLE %s;", c.Table))
	}

	policy := c.DeleteBeforeInsert
	if policy == nil {
		policy = NoDelete{}
	}

	for _, day := range c.Dates {
		dataFile := strings.ReplaceAll(c.Path, "{date}", day)
		if !files.Exists(dataFile) {
			return nil, &loader.MissingDataFileError{Path: dataFile, Table: c.Table}
		}

		if del, ok := policy.deleteStatement(c.Table, dataFile, day); ok {
			statements = append(statements, del)
		} else if p, isPredicate := policy.(ByPredicate); isPredicate {
			logger.Verbose("Skipping delete on %s for %s: unsafe predicate %s=%q", c.Table, day, p.Field, p.Value)
		}

		statements = append(statements,
			fmt.Sprintf("COPY %s FROM LOCAL '%s' %s;", c.tableFields(dataFile, day), dataFile, c.FileSpec.Clause(dataFile)),
			fmt.Sprintf("INSERT INTO last_updated (name, updated_at, updated_by) VALUES ('%s', now(), '%s');", c.Table, loader.UpdatedBy),
			"COMMIT;",
		)
	}

	return statements, nil
}

func (c *LoadConfig) tableFields(dataFile, day string) string {
	if c.Fields == "" {
		return c.Table
	}
	fields := strings.NewReplacer("{path}", dataFile, "{date}", day).Replace(c.Fields)
	return fmt.Sprintf("%s(%s)", c.Table, fields)
}
