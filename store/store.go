// Package store holds the immutable in-memory record set for the process
// lifetime. It replaces ambient global state with an explicit handle that
// gets injected into the handlers.
package store

import "sales-dashboard/models"

// Store is a read-only view over the loaded sales records. It is built once
// at startup and safe for concurrent readers; nothing mutates it afterwards.
type Store struct {
	records []models.SalesRecord
}

// New wraps the loaded record set. A nil slice is a valid empty dataset.
func New(records []models.SalesRecord) *Store {
	if records == nil {
		records = []models.SalesRecord{}
	}
	return &Store{records: records}
}

// Records returns the full record set. Callers must treat it as read-only;
// the query engines copy before reordering or slicing.
func (s *Store) Records() []models.SalesRecord {
	return s.records
}

// Count reports how many records are loaded.
func (s *Store) Count() int {
	return len(s.records)
}
