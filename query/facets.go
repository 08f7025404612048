package query

import (
	"sort"
	"time"

	"sales-dashboard/models"
)

// Facets computes the filter options still applicable to records. When any
// filter dimension of p is active, the set is filtered first (without
// pagination) so a UI only offers values that can still produce results.
// Categorical facets are the sorted distinct non-empty values; tags are
// flattened across every record's tag list.
func Facets(records []models.SalesRecord, p models.QueryParams) models.FacetResult {
	if hasActiveFilters(p) {
		records = Filter(records, p)
	}

	return models.FacetResult{
		Regions:        distinct(records, func(r models.SalesRecord) string { return r.CustomerRegion }),
		Genders:        distinct(records, func(r models.SalesRecord) string { return r.Gender }),
		Categories:     distinct(records, func(r models.SalesRecord) string { return r.ProductCategory }),
		Tags:           distinctTags(records),
		PaymentMethods: distinct(records, func(r models.SalesRecord) string { return r.PaymentMethod }),
		AgeRange:       ageRange(records),
		DateRange:      dateRange(records),
	}
}

func distinct(records []models.SalesRecord, key func(models.SalesRecord) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range records {
		v := key(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func distinctTags(records []models.SalesRecord) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range records {
		for _, tag := range r.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}

// ageRange is the min/max of parseable ages, defaulting to 0..100 when no
// record has one.
func ageRange(records []models.SalesRecord) models.AgeRange {
	found := false
	var min, max int
	for _, r := range records {
		if r.Age == nil {
			continue
		}
		if !found || *r.Age < min {
			min = *r.Age
		}
		if !found || *r.Age > max {
			max = *r.Age
		}
		found = true
	}
	if !found {
		return models.AgeRange{Min: 0, Max: 100}
	}
	return models.AgeRange{Min: min, Max: max}
}

// dateRange is the UTC calendar-date bounds of parseable dates; both ends
// are null when no record has one.
func dateRange(records []models.SalesRecord) models.DateRange {
	var start, end *time.Time
	for _, r := range records {
		if r.Date == nil {
			continue
		}
		if start == nil || r.Date.Before(*start) {
			start = r.Date
		}
		if end == nil || r.Date.After(*end) {
			end = r.Date
		}
	}
	if start == nil {
		return models.DateRange{}
	}
	s := start.UTC().Format("2006-01-02")
	e := end.UTC().Format("2006-01-02")
	return models.DateRange{Start: &s, End: &e}
}
