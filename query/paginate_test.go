package query

import (
	"fmt"
	"testing"

	"sales-dashboard/models"
)

func sequentialRecords(n int) []models.SalesRecord {
	records := make([]models.SalesRecord, n)
	for i := range records {
		records[i] = models.SalesRecord{CustomerName: fmt.Sprintf("r%02d", i)}
	}
	return records
}

func TestPaginateDefaults(t *testing.T) {
	records := sequentialRecords(15)

	cases := []struct {
		page, pageSize string
		wantPage       int
		wantSize       int
	}{
		{"", "", 1, 10},
		{"abc", "xyz", 1, 10},
		{"0", "0", 1, 10},
		{"-3", "-1", 1, 10},
		{"2", "5", 2, 5},
	}

	for _, c := range cases {
		got := Paginate(records, c.page, c.pageSize)
		if got.Pagination.Page != c.wantPage || got.Pagination.PageSize != c.wantSize {
			t.Fatalf("Paginate(page=%q, pageSize=%q) = page %d size %d; want %d/%d",
				c.page, c.pageSize, got.Pagination.Page, got.Pagination.PageSize, c.wantPage, c.wantSize)
		}
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	records := sequentialRecords(25)

	got := Paginate(records, "3", "10")
	if len(got.Data) != 5 {
		t.Fatalf("expected 5 records on the last page, got %d", len(got.Data))
	}
	if got.Data[0].CustomerName != "r20" || got.Data[4].CustomerName != "r24" {
		t.Fatalf("expected records 20-24, got %v", names(got.Data))
	}

	p := got.Pagination
	if p.TotalItems != 25 || p.TotalPages != 3 || p.HasNextPage || !p.HasPrevPage {
		t.Fatalf("unexpected pagination metadata: %+v", p)
	}
}

func TestPaginateBeyondRangeIsEmpty(t *testing.T) {
	records := sequentialRecords(5)

	got := Paginate(records, "4", "10")
	if len(got.Data) != 0 {
		t.Fatalf("expected empty page past the end, got %d records", len(got.Data))
	}
	if got.Pagination.TotalPages != 1 || got.Pagination.HasNextPage {
		t.Fatalf("unexpected pagination metadata: %+v", got.Pagination)
	}
}

func TestPaginateCoverage(t *testing.T) {
	records := sequentialRecords(23)

	first := Paginate(records, "1", "7")
	var combined []models.SalesRecord
	for page := 1; page <= first.Pagination.TotalPages; page++ {
		combined = append(combined, Paginate(records, fmt.Sprint(page), "7").Data...)
	}

	if !equalNames(combined, names(records)) {
		t.Fatalf("concatenated pages do not reconstruct the input: %v", names(combined))
	}
}
