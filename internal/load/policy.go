package load

import (
	"fmt"
	"regexp"
	"strings"
)

var predicateFieldPattern = regexp.MustCompile(`^[a-zA-Z0-9_]*$`)

// DeletePolicy decides which rows are removed before a date's file is copied
// in. It is one of NoDelete, BySourceFile or ByPredicate.
type DeletePolicy interface {
	// deleteStatement returns the DELETE for one date, or false when nothing
	// should be deleted.
	deleteStatement(table, dataFile, date string) (string, bool)
}

// NoDelete keeps existing rows.
type NoDelete struct{}

func (NoDelete) deleteStatement(string, string, string) (string, bool) {
	return "", false
}

// BySourceFile deletes the rows a previous load of the same file produced,
// matched on the source_file column.
type BySourceFile struct{}

func (BySourceFile) deleteStatement(table, dataFile, _ string) (string, bool) {
	return fmt.Sprintf("DELETE FROM %s WHERE source_file='%s';", table, dataFile), true
}

// ByPredicate deletes rows where Field equals Value. Value is a template in
// which {date} is replaced by the date being loaded.
//
// A Field with characters other than letters, digits and underscores, or a
// rendered Value containing a single quote, suppresses the DELETE for that
// date instead of failing the load.
type ByPredicate struct {
	Field string
	Value string
}

func (p ByPredicate) deleteStatement(table, _, date string) (string, bool) {
	value := strings.ReplaceAll(p.Value, "{date}", date)
	if !predicateFieldPattern.MatchString(p.Field) || strings.Contains(value, "'") {
		return "", false
	}
	return fmt.Sprintf("DELETE FROM %s WHERE %s='%s';", table, p.Field, value), true
}
