package repository

import (
	"context"
	"errors"
	"testing"

	"marine-booking/internal/data/entity"
	"marine-booking/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingStore simulates a record store outage on every call.
type failingStore struct{}

func (failingStore) Select(_ context.Context, collection string, _ store.Query) ([]store.Record, error) {
	return nil, &store.StoreError{Op: "select", Collection: collection, Err: errors.New("connection refused")}
}

func (failingStore) Create(_ context.Context, collection string, _ map[string]any) (store.Record, error) {
	return store.Record{}, &store.StoreError{Op: "create", Collection: collection, Err: errors.New("connection refused")}
}

func (failingStore) Update(_ context.Context, collection, _ string, _ map[string]any) (store.Record, error) {
	return store.Record{}, &store.StoreError{Op: "update", Collection: collection, Err: errors.New("connection refused")}
}

func TestFindByCodeAbsentIsNotAnError(t *testing.T) {
	mem := store.NewMemory()
	repo := NewListingRepository(mem, 500, zap.NewNop())

	listing, err := repo.FindByCode(context.Background(), "NOPE99")
	require.NoError(t, err)
	assert.Nil(t, listing)
}

func TestFindByCodePropagatesStoreFailure(t *testing.T) {
	repo := NewListingRepository(failingStore{}, 500, zap.NewNop())

	_, err := repo.FindByCode(context.Background(), "SCUBA01")
	require.Error(t, err)
	assert.True(t, store.IsStoreError(err))
}

func TestListDegradesToEmptyOnStoreFailure(t *testing.T) {
	repo := NewListingRepository(failingStore{}, 500, zap.NewNop())

	listings, total, err := repo.List(context.Background(), ListingFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.Zero(t, total)
}

func TestBookingHistoryDegradesToEmptyOnStoreFailure(t *testing.T) {
	repo := NewBookingRepository(failingStore{}, 500, zap.NewNop())

	bookings, total, err := repo.FindByUserID(context.Background(), "rec00000000000001", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.Zero(t, total)
}

func TestApprovedReviewsDegradeToEmptyOnStoreFailure(t *testing.T) {
	repo := NewReviewRepository(failingStore{}, 500, zap.NewNop())

	reviews, total, err := repo.FindApprovedByListing(context.Background(), "rec00000000000001", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Zero(t, total)
}

func TestCreateBookingPropagatesStoreFailure(t *testing.T) {
	repo := NewBookingRepository(failingStore{}, 500, zap.NewNop())

	_, err := repo.Create(context.Background(), &entity.Booking{BookingID: "BK-1", ListingID: "rec00000000000001"})
	require.Error(t, err)
	assert.True(t, store.IsStoreError(err))
}

func TestListFiltersAndPaginates(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed("listings", map[string]any{"code": "DIVE01", "category": "Diving", "price": 100.0, "ratingScore": 4.8})
	mem.Seed("listings", map[string]any{"code": "DIVE02", "category": "Diving", "price": 60.0, "ratingScore": 4.2})
	mem.Seed("listings", map[string]any{"code": "SNORK01", "category": "Snorkeling", "price": 40.0, "ratingScore": 4.9})

	repo := NewListingRepository(mem, 500, zap.NewNop())

	listings, total, err := repo.List(context.Background(), ListingFilter{Category: "Diving"}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, listings, 1)
	// Sorted by rating, best first.
	assert.Equal(t, "DIVE01", listings[0].Code)

	minPrice := 70.0
	listings, total, err = repo.List(context.Background(), ListingFilter{Category: "Diving", MinPrice: &minPrice}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, listings, 1)
	assert.Equal(t, "DIVE01", listings[0].Code)
}
