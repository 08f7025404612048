package query

import (
	"testing"

	"sales-dashboard/models"
)

func TestSortByDate(t *testing.T) {
	records := []models.SalesRecord{
		{CustomerName: "mid", Date: ts(t, "2024-02-01T00:00:00Z")},
		{CustomerName: "new", Date: ts(t, "2024-03-01T00:00:00Z")},
		{CustomerName: "old", Date: ts(t, "2024-01-01T00:00:00Z")},
		{CustomerName: "undated", Date: nil},
	}

	asc := Sort(records, SortByDate, "asc")
	if !equalNames(asc, []string{"undated", "old", "mid", "new"}) {
		t.Fatalf("date asc: got %v", names(asc))
	}

	desc := Sort(records, SortByDate, "desc")
	if !equalNames(desc, []string{"new", "mid", "old", "undated"}) {
		t.Fatalf("date desc: got %v", names(desc))
	}
}

func TestSortByQuantity(t *testing.T) {
	records := []models.SalesRecord{
		{CustomerName: "five", Quantity: numPtr(5)},
		{CustomerName: "none", Quantity: nil},
		{CustomerName: "two", Quantity: numPtr(2)},
	}

	asc := Sort(records, SortByQuantity, "asc")
	if !equalNames(asc, []string{"none", "two", "five"}) {
		t.Fatalf("quantity asc: got %v", names(asc))
	}
}

func TestSortByCustomerNameCaseInsensitive(t *testing.T) {
	records := []models.SalesRecord{
		{CustomerName: "charlie"},
		{CustomerName: "Alice"},
		{CustomerName: "bob"},
	}

	asc := Sort(records, SortByCustomerName, "asc")
	if !equalNames(asc, []string{"Alice", "bob", "charlie"}) {
		t.Fatalf("name asc: got %v", names(asc))
	}
}

func TestSortStability(t *testing.T) {
	sameDay := "2024-01-01T00:00:00Z"
	records := []models.SalesRecord{
		{CustomerName: "first", Date: ts(t, sameDay)},
		{CustomerName: "second", Date: ts(t, sameDay)},
		{CustomerName: "third", Date: ts(t, sameDay)},
	}

	for _, order := range []string{"asc", "desc"} {
		got := Sort(records, SortByDate, order)
		if !equalNames(got, []string{"first", "second", "third"}) {
			t.Fatalf("equal keys must keep input order (%s): got %v", order, names(got))
		}
	}
}

func TestSortUnknownKeyIsNoop(t *testing.T) {
	records := []models.SalesRecord{
		{CustomerName: "b"},
		{CustomerName: "a"},
	}

	got := Sort(records, "finalAmount", "asc")
	if !equalNames(got, []string{"b", "a"}) {
		t.Fatalf("unknown sortBy must keep input order, got %v", names(got))
	}
}

func TestSortOrderFallsBackToAscending(t *testing.T) {
	records := []models.SalesRecord{
		{CustomerName: "b", Quantity: numPtr(2)},
		{CustomerName: "a", Quantity: numPtr(1)},
	}

	// Only a case-insensitive "desc" sorts descending.
	if got := Sort(records, SortByQuantity, "DESC"); !equalNames(got, []string{"b", "a"}) {
		t.Fatalf("DESC should sort descending, got %v", names(got))
	}
	if got := Sort(records, SortByQuantity, "descending"); !equalNames(got, []string{"a", "b"}) {
		t.Fatalf("unrecognized order should sort ascending, got %v", names(got))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := []models.SalesRecord{
		{CustomerName: "b", Quantity: numPtr(2)},
		{CustomerName: "a", Quantity: numPtr(1)},
	}

	Sort(records, SortByQuantity, "asc")
	if !equalNames(records, []string{"b", "a"}) {
		t.Fatalf("input slice was mutated: %v", names(records))
	}
}
