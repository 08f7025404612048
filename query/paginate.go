package query

import (
	"math"
	"strconv"
	"strings"

	"sales-dashboard/models"
)

// Page is one slice of an ordered record set plus its pagination metadata.
type Page struct {
	Data       []models.SalesRecord
	Pagination models.Pagination
}

// Paginate slices records into the requested page. Page and size strings are
// coerced to integers and defaulted (1 and 10) when missing, non-numeric or
// below 1. A page past the end yields an empty slice, not an error.
func Paginate(records []models.SalesRecord, page, pageSize string) Page {
	pageNum := coercePositive(page, 1)
	size := coercePositive(pageSize, 10)

	totalItems := len(records)
	totalPages := int(math.Ceil(float64(totalItems) / float64(size)))

	start := (pageNum - 1) * size
	end := start + size
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	data := make([]models.SalesRecord, end-start)
	copy(data, records[start:end])

	return Page{
		Data: data,
		Pagination: models.Pagination{
			Page:        pageNum,
			PageSize:    size,
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			HasNextPage: pageNum < totalPages,
			HasPrevPage: pageNum > 1,
		},
	}
}

// coercePositive parses s as an integer, falling back to def when s is
// missing, malformed or below 1.
func coercePositive(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
