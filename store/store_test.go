package store

import (
	"testing"

	"sales-dashboard/models"
)

func TestNewNilIsEmptyDataset(t *testing.T) {
	s := New(nil)
	if s.Count() != 0 {
		t.Fatalf("expected empty store, got %d", s.Count())
	}
	if s.Records() == nil {
		t.Fatalf("records must be a valid empty slice")
	}
}

func TestCount(t *testing.T) {
	s := New([]models.SalesRecord{{TransactionID: "T1"}, {TransactionID: "T2"}})
	if s.Count() != 2 {
		t.Fatalf("expected 2 records, got %d", s.Count())
	}
}
