package query

import (
	"strings"

	"sales-dashboard/models"
)

// Filter applies every active filter dimension to records and returns the
// reduced set. Dimensions combine with AND; values within one dimension
// combine with OR. An absent, empty or malformed dimension filters nothing.
// The input slice is never mutated.
func Filter(records []models.SalesRecord, p models.QueryParams) []models.SalesRecord {
	filtered := make([]models.SalesRecord, len(records))
	copy(filtered, records)

	if term := strings.ToLower(strings.TrimSpace(p.Search)); term != "" {
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			return strings.Contains(strings.ToLower(r.CustomerName), term) ||
				strings.Contains(strings.ToLower(r.PhoneNumber), term)
		})
	}

	if len(p.Regions) > 0 {
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			return matchesAny(r.CustomerRegion, p.Regions, false)
		})
	}

	if len(p.Genders) > 0 {
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			return matchesAny(r.Gender, p.Genders, true)
		})
	}

	if len(p.Categories) > 0 {
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			return matchesAny(r.ProductCategory, p.Categories, false)
		})
	}

	if len(p.Tags) > 0 {
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			for _, recordTag := range r.Tags {
				if matchesAny(recordTag, p.Tags, true) {
					return true
				}
			}
			return false
		})
	}

	if len(p.PaymentMethods) > 0 {
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			return matchesAny(r.PaymentMethod, p.PaymentMethods, false)
		})
	}

	// Records without a parseable age are excluded once an age bound is active.
	if minAge, ok := parseNumber(p.MinAge); ok {
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			return r.Age != nil && float64(*r.Age) >= minAge
		})
	}
	if maxAge, ok := parseNumber(p.MaxAge); ok {
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			return r.Age != nil && float64(*r.Age) <= maxAge
		})
	}

	// Same exclusion rule for dates. The end bound is inclusive through the
	// end of its UTC calendar day.
	if start, ok := parseDateParam(p.StartDate); ok {
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			return r.Date != nil && !r.Date.Before(start)
		})
	}
	if end, ok := parseDateParam(p.EndDate); ok {
		endInclusive := endOfDay(end)
		filtered = keep(filtered, func(r models.SalesRecord) bool {
			return r.Date != nil && !r.Date.After(endInclusive)
		})
	}

	return filtered
}

// keep filters in place over a slice the caller owns.
func keep(records []models.SalesRecord, pred func(models.SalesRecord) bool) []models.SalesRecord {
	out := records[:0]
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// matchesAny reports whether the trimmed record value equals any of the
// supplied values, optionally ignoring case.
func matchesAny(value string, values []string, foldCase bool) bool {
	value = strings.TrimSpace(value)
	for _, v := range values {
		v = strings.TrimSpace(v)
		if foldCase {
			if strings.EqualFold(value, v) {
				return true
			}
		} else if value == v {
			return true
		}
	}
	return false
}
