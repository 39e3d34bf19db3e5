package store

import (
	"context"
	"errors"
	"fmt"
)

// Store is the collection-oriented record store boundary. Two
// implementations exist: Client talks to the live remote store over HTTP,
// Memory is an in-process fixture store used by tests and offline setups.
// The implementation is selected once at wiring time.
type Store interface {
	Select(ctx context.Context, collection string, q Query) ([]Record, error)
	Create(ctx context.Context, collection string, fields map[string]any) (Record, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) (Record, error)
}

// Query fully describes one bounded fetch: filter predicates, an optional
// sort spec and a result-size bound.
type Query struct {
	Predicates []Predicate
	Sort       *Sort
	MaxRecords int
}

type Sort struct {
	Field     string
	Direction string // "asc" or "desc"
}

// StoreError marks a transport or auth failure talking to the record
// store. Read paths may degrade it into an empty result at the repository
// boundary; write paths must propagate it.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err originates from the store transport.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// Paginate slices an already-fetched result set in memory. The store's
// native pagination cursor is not safely resumable across independent
// calls, so callers fetch up to a bound and slice here. A page past the
// end yields an empty slice, never an error.
func Paginate(records []Record, page, pageSize int) []Record {
	if page < 1 || pageSize < 1 {
		return []Record{}
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []Record{}
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	return records[start:end]
}
