package query

import (
	"testing"
	"time"

	"sales-dashboard/models"
)

// Test fixture helpers shared by the query engine tests.

func agePtr(n int) *int { return &n }

func numPtr(f float64) *float64 { return &f }

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad fixture timestamp %q: %v", value, err)
	}
	parsed = parsed.UTC()
	return &parsed
}

func names(records []models.SalesRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.CustomerName
	}
	return out
}

func equalNames(a []models.SalesRecord, want []string) bool {
	if len(a) != len(want) {
		return false
	}
	for i, r := range a {
		if r.CustomerName != want[i] {
			return false
		}
	}
	return true
}
