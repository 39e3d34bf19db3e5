package repository

import (
	"marine-booking/pkg/store"

	"go.uber.org/zap"
)

// Repository groups the typed collection accessors. Every entity read and
// write goes through here; no write spans more than one collection
// atomically.
type Repository struct {
	Listing     ListingRepository
	Booking     BookingRepository
	Review      ReviewRepository
	Destination DestinationRepository
	Category    CategoryRepository
}

func NewRepository(st store.Store, fetchLimit int, log *zap.Logger) *Repository {
	return &Repository{
		Listing:     NewListingRepository(st, fetchLimit, log),
		Booking:     NewBookingRepository(st, fetchLimit, log),
		Review:      NewReviewRepository(st, fetchLimit, log),
		Destination: NewDestinationRepository(st, fetchLimit, log),
		Category:    NewCategoryRepository(st, fetchLimit, log),
	}
}
