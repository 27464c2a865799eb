// Package dates expands a start/end date pair into the ordered list of
// partition dates a load run covers.
package dates

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/vvka-141/vertica-loader/pkg/loader"
)

// ComputeDates returns every calendar day in the inclusive range [start, end],
// formatted with the strftime format dateFormat, in ascending order.
//
// An empty end returns []string{start} exactly as given, without parsing it.
// An empty dateFormat means loader.DefaultDateFormat.
func ComputeDates(start, end, dateFormat string) ([]string, error) {
	if end == "" {
		return []string{start}, nil
	}
	if dateFormat == "" {
		dateFormat = loader.DefaultDateFormat
	}

	first, err := strftime.Parse(dateFormat, start)
	if err != nil {
		return nil, fmt.Errorf("start date %q does not match %q: %w", start, dateFormat, loader.ErrInvalidDateFormat)
	}
	last, err := strftime.Parse(dateFormat, end)
	if err != nil {
		return nil, fmt.Errorf("end date %q does not match %q: %w", end, dateFormat, loader.ErrInvalidDateFormat)
	}

	first = midnight(first)
	last = midnight(last)
	if last.Before(first) {
		return nil, fmt.Errorf("end date %s precedes start date %s: %w", end, start, loader.ErrInvalidRange)
	}

	var days []string
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, strftime.Format(dateFormat, d))
	}
	return days, nil
}

// midnight drops the clock part so that formats carrying a time of day still
// step one calendar day at a time. UTC keeps AddDate clear of DST shifts.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
