package query

import (
	"sort"
	"strings"
	"time"

	"sales-dashboard/models"
)

// Sortable keys accepted by Sort. Anything else leaves the order untouched.
const (
	SortByDate         = "date"
	SortByQuantity     = "quantity"
	SortByCustomerName = "customerName"
)

// Sort returns a copy of records ordered by sortBy. The sort is stable, so
// records with equal keys keep their relative input order. Missing values
// sort as the zero of their key: the zero time for dates, 0 for quantities,
// the empty string for names. Any sortOrder other than "desc" (case
// insensitive) sorts ascending; an unrecognized sortBy returns the input
// order unchanged.
func Sort(records []models.SalesRecord, sortBy, sortOrder string) []models.SalesRecord {
	sorted := make([]models.SalesRecord, len(records))
	copy(sorted, records)

	var less func(a, b models.SalesRecord) bool
	switch sortBy {
	case SortByDate:
		less = func(a, b models.SalesRecord) bool {
			return dateKey(a).Before(dateKey(b))
		}
	case SortByQuantity:
		less = func(a, b models.SalesRecord) bool {
			return quantityKey(a) < quantityKey(b)
		}
	case SortByCustomerName:
		less = func(a, b models.SalesRecord) bool {
			return strings.ToLower(a.CustomerName) < strings.ToLower(b.CustomerName)
		}
	default:
		return sorted
	}

	descending := strings.EqualFold(sortOrder, "desc")
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func dateKey(r models.SalesRecord) time.Time {
	if r.Date == nil {
		return time.Time{}
	}
	return *r.Date
}

func quantityKey(r models.SalesRecord) float64 {
	if r.Quantity == nil {
		return 0
	}
	return *r.Quantity
}
