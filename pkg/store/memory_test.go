package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedListings(m *Memory) {
	m.Seed("listings", map[string]any{"code": "SCUBA01", "category": "Diving", "price": 100.0, "featured": "checked"})
	m.Seed("listings", map[string]any{"code": "SNORK01", "category": "Snorkeling", "price": 40.0})
	m.Seed("listings", map[string]any{"code": "DIVE02", "category": "Diving", "price": 60.0})
}

func TestMemorySelectByPredicate(t *testing.T) {
	m := NewMemory()
	seedListings(m)

	records, err := m.Select(context.Background(), "listings", Query{
		Predicates: []Predicate{Equals("category", "Diving")},
	})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMemorySelectCombinesPredicates(t *testing.T) {
	m := NewMemory()
	seedListings(m)

	records, err := m.Select(context.Background(), "listings", Query{
		Predicates: []Predicate{
			Equals("category", "Diving"),
			Range("price", ">=", 80),
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "SCUBA01", records[0].String("code"))
}

func TestMemorySelectBooleanEncoding(t *testing.T) {
	m := NewMemory()
	seedListings(m)

	records, err := m.Select(context.Background(), "listings", Query{
		Predicates: []Predicate{Equals("featured", true)},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "SCUBA01", records[0].String("code"))
}

func TestMemorySelectSortAndBound(t *testing.T) {
	m := NewMemory()
	seedListings(m)

	records, err := m.Select(context.Background(), "listings", Query{
		Sort:       &Sort{Field: "price", Direction: "desc"},
		MaxRecords: 2,
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "SCUBA01", records[0].String("code"))
	assert.Equal(t, "DIVE02", records[1].String("code"))
}

func TestMemoryCreateAssignsRecordID(t *testing.T) {
	m := NewMemory()

	rec, err := m.Create(context.Background(), "bookings", map[string]any{"bookingId": "BK-1"})
	require.NoError(t, err)
	assert.True(t, IsRecordID(rec.ID))
}

func TestMemoryUpdateMergesFields(t *testing.T) {
	m := NewMemory()
	id := m.Seed("bookings", map[string]any{"bookingId": "BK-1", "paymentStatus": "pending"})

	updated, err := m.Update(context.Background(), "bookings", id, map[string]any{"paymentStatus": "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.String("paymentStatus"))
	assert.Equal(t, "BK-1", updated.String("bookingId"))
}

func TestMemoryUpdateUnknownRecordFails(t *testing.T) {
	m := NewMemory()

	_, err := m.Update(context.Background(), "bookings", "rec00000000000099", map[string]any{"x": 1})
	require.Error(t, err)
	assert.True(t, IsStoreError(err))
}

func TestMemorySelectContainsOnLinkField(t *testing.T) {
	m := NewMemory()
	listingID := m.Seed("listings", map[string]any{"code": "SCUBA01"})
	m.Seed("bookings", map[string]any{"bookingId": "BK-1", "listing": []string{listingID}})
	m.Seed("bookings", map[string]any{"bookingId": "BK-2", "listing": []string{"rec00000000000099"}})

	records, err := m.Select(context.Background(), "bookings", Query{
		Predicates: []Predicate{Contains("listing", listingID)},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "BK-1", records[0].String("bookingId"))
}
