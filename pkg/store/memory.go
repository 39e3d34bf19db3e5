package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Memory is the in-process fixture implementation of Store. It evaluates
// predicates directly against seeded records, so repositories and services
// run unchanged against it. Selected via config for offline setups and
// used throughout the tests.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]Record
	seq         int
}

func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string][]Record),
	}
}

// Seed inserts a record with a generated internal id and returns the id.
func (m *Memory) Seed(collection string, fields map[string]any) string {
	rec, _ := m.Create(context.Background(), collection, fields)
	return rec.ID
}

func (m *Memory) Select(_ context.Context, collection string, q Query) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Record
	for _, rec := range m.collections[collection] {
		ok, err := matchAll(rec, q.Predicates)
		if err != nil {
			return nil, &StoreError{Op: "select", Collection: collection, Err: err}
		}
		if ok {
			out = append(out, cloneRecord(rec))
		}
	}

	if q.Sort != nil {
		sortRecords(out, *q.Sort)
	}

	if q.MaxRecords > 0 && len(out) > q.MaxRecords {
		out = out[:q.MaxRecords]
	}

	return out, nil
}

func (m *Memory) Create(_ context.Context, collection string, fields map[string]any) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	rec := Record{
		ID:     fmt.Sprintf("rec%014d", m.seq),
		Fields: cloneFields(fields),
	}
	m.collections[collection] = append(m.collections[collection], rec)

	return cloneRecord(rec), nil
}

func (m *Memory) Update(_ context.Context, collection, id string, fields map[string]any) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := m.collections[collection]
	for i, rec := range records {
		if rec.ID != id {
			continue
		}
		for k, v := range fields {
			records[i].Fields[k] = v
		}
		return cloneRecord(records[i]), nil
	}

	return Record{}, &StoreError{
		Op:         "update",
		Collection: collection,
		Err:        fmt.Errorf("record %s not found", id),
	}
}

func matchAll(rec Record, preds []Predicate) (bool, error) {
	for _, p := range preds {
		ok, err := p.match(rec)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func sortRecords(records []Record, s Sort) {
	desc := strings.EqualFold(s.Direction, "desc")

	sort.SliceStable(records, func(i, j int) bool {
		less := lessByField(records[i], records[j], s.Field)
		if desc {
			return lessByField(records[j], records[i], s.Field)
		}
		return less
	})
}

func lessByField(a, b Record, field string) bool {
	// Numeric fields compare numerically, everything else as strings.
	if _, ok := a.Fields[field].(float64); ok {
		return a.Float(field) < b.Float(field)
	}
	if _, ok := a.Fields[field].(int); ok {
		return a.Float(field) < b.Float(field)
	}
	return a.String(field) < b.String(field)
}

func cloneRecord(rec Record) Record {
	return Record{ID: rec.ID, Fields: cloneFields(rec.Fields)}
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
