package models

import "time"

// --- Core Models ---

// SalesRecord represents a single normalized sales transaction.
// Numeric and date fields that failed to parse during ingestion are nil and
// stay nil for the lifetime of the record; they never carry a sentinel value.
type SalesRecord struct {
	TransactionID      string     `json:"transactionId"`
	CustomerID         string     `json:"customerId"`
	CustomerName       string     `json:"customerName"`
	PhoneNumber        string     `json:"phoneNumber"`
	CustomerRegion     string     `json:"customerRegion"`
	Gender             string     `json:"gender"`
	Age                *int       `json:"age"`
	ProductCategory    string     `json:"productCategory"`
	Tags               []string   `json:"tags"`
	Quantity           *float64   `json:"quantity"`
	PricePerUnit       *float64   `json:"pricePerUnit"`
	DiscountPercentage *float64   `json:"discountPercentage"`
	TotalAmount        *float64   `json:"totalAmount"`
	FinalAmount        *float64   `json:"finalAmount"`
	PaymentMethod      string     `json:"paymentMethod"`
	Date               *time.Time `json:"date"`
}

// --- Query Input ---

// QueryParams carries the query parameters of a single request.
// Multi-valued dimensions are already normalized to lists at the transport
// boundary; scalar fields keep their raw string form so that malformed values
// can degrade to a no-op inside the engines instead of failing the request.
type QueryParams struct {
	Search         string
	Regions        []string
	Genders        []string
	Categories     []string
	Tags           []string
	PaymentMethods []string
	MinAge         string
	MaxAge         string
	StartDate      string
	EndDate        string
	SortBy         string
	SortOrder      string
	Page           string
	PageSize       string
}

// --- Query Output ---

// Pagination describes the position of one page within the full result set.
type Pagination struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// AppliedFilters is the canonical echo of the resolved query parameters,
// returned so clients can display active filter state without re-deriving it.
// Array dimensions are always lists, never null.
type AppliedFilters struct {
	Search         *string  `json:"search"`
	Regions        []string `json:"regions"`
	Genders        []string `json:"genders"`
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	PaymentMethods []string `json:"paymentMethods"`
	MinAge         *float64 `json:"minAge"`
	MaxAge         *float64 `json:"maxAge"`
	StartDate      *string  `json:"startDate"`
	EndDate        *string  `json:"endDate"`
	SortBy         string   `json:"sortBy"`
	SortOrder      string   `json:"sortOrder"`
}

// QueryResult is the complete response of the sales query pipeline.
type QueryResult struct {
	Data           []SalesRecord  `json:"data"`
	Pagination     Pagination     `json:"pagination"`
	AppliedFilters AppliedFilters `json:"appliedFilters"`
}

// --- Facets ---

// AgeRange holds the min/max of parseable ages in a record set.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DateRange holds the calendar-date bounds of parseable dates in a record
// set, formatted YYYY-MM-DD. Both are null when no record has a valid date.
type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// FacetResult lists the filter options still applicable to a record set.
type FacetResult struct {
	Regions        []string  `json:"regions"`
	Genders        []string  `json:"genders"`
	Categories     []string  `json:"categories"`
	Tags           []string  `json:"tags"`
	PaymentMethods []string  `json:"paymentMethods"`
	AgeRange       AgeRange  `json:"ageRange"`
	DateRange      DateRange `json:"dateRange"`
}
