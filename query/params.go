// Package query implements the sales query pipeline: filtering, sorting,
// pagination and facet aggregation over an in-memory record set. Every
// function is pure and total; malformed input degrades to a documented
// default instead of producing an error.
package query

import (
	"strconv"
	"strings"
	"time"

	"sales-dashboard/models"
)

// NormalizeList collapses the two accepted forms of a multi-valued query
// parameter (repeated values, or a single comma-joined string) into one
// canonical list. Each element is trimmed and empty elements are discarded.
// This is the only place the string-or-list duality is handled; the filter
// engine always sees a clean list.
func NormalizeList(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseNumber parses a numeric parameter, reporting ok=false for anything
// unparseable so the caller can treat the dimension as inactive.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDateParam parses a date filter bound. All bounds are interpreted in
// UTC: a bare calendar date becomes UTC midnight of that day. Reports
// ok=false for anything unparseable.
func parseDateParam(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// endOfDay returns the last representable instant (millisecond precision)
// of t's UTC calendar date, making an end-date bound inclusive of the
// whole day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, time.UTC)
}

// hasActiveFilters reports whether any filter dimension is set, so callers
// can skip a scan that would be the identity anyway.
func hasActiveFilters(p models.QueryParams) bool {
	return p.Search != "" ||
		len(p.Regions) > 0 || len(p.Genders) > 0 || len(p.Categories) > 0 ||
		len(p.Tags) > 0 || len(p.PaymentMethods) > 0 ||
		p.MinAge != "" || p.MaxAge != "" ||
		p.StartDate != "" || p.EndDate != ""
}
