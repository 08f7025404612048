package query

import (
	"sales-dashboard/models"
)

// Process runs the full pipeline over records: filter, then sort, then
// paginate, in that order. Pagination always sees the fully filtered and
// sorted set. An empty record set short-circuits to an empty first page
// without touching the engines.
func Process(records []models.SalesRecord, p models.QueryParams) models.QueryResult {
	if len(records) == 0 {
		return emptyResult()
	}

	processed := Filter(records, p)

	sortBy, sortOrder := resolveSort(p.SortBy, p.SortOrder)
	processed = Sort(processed, sortBy, sortOrder)

	page := Paginate(processed, p.Page, p.PageSize)

	return models.QueryResult{
		Data:           page.Data,
		Pagination:     page.Pagination,
		AppliedFilters: appliedFilters(p, sortBy, sortOrder),
	}
}

// resolveSort fills in the default sort: date descending when no key is
// given, and when only the key is given, descending for date, ascending
// for everything else.
func resolveSort(sortBy, sortOrder string) (string, string) {
	if sortBy == "" {
		sortBy = SortByDate
	}
	if sortOrder == "" {
		if sortBy == SortByDate {
			sortOrder = "desc"
		} else {
			sortOrder = "asc"
		}
	}
	return sortBy, sortOrder
}

// appliedFilters builds the canonical echo of the resolved parameters.
// Every dimension is present whether or not it reduced the set; this is a
// display contract for clients.
func appliedFilters(p models.QueryParams, sortBy, sortOrder string) models.AppliedFilters {
	af := models.AppliedFilters{
		Regions:        emptyIfNil(p.Regions),
		Genders:        emptyIfNil(p.Genders),
		Categories:     emptyIfNil(p.Categories),
		Tags:           emptyIfNil(p.Tags),
		PaymentMethods: emptyIfNil(p.PaymentMethods),
		SortBy:         sortBy,
		SortOrder:      sortOrder,
	}
	if p.Search != "" {
		af.Search = &p.Search
	}
	if minAge, ok := parseNumber(p.MinAge); ok {
		af.MinAge = &minAge
	}
	if maxAge, ok := parseNumber(p.MaxAge); ok {
		af.MaxAge = &maxAge
	}
	if p.StartDate != "" {
		af.StartDate = &p.StartDate
	}
	if p.EndDate != "" {
		af.EndDate = &p.EndDate
	}
	return af
}

// emptyResult is the zero-record response: first page, zero totals, and an
// applied-filters echo with empty lists.
func emptyResult() models.QueryResult {
	return models.QueryResult{
		Data: []models.SalesRecord{},
		Pagination: models.Pagination{
			Page:     1,
			PageSize: 10,
		},
		AppliedFilters: models.AppliedFilters{
			Regions:        []string{},
			Genders:        []string{},
			Categories:     []string{},
			Tags:           []string{},
			PaymentMethods: []string{},
		},
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
