package wire

import (
	"marine-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireListing(r chi.Router, listingHandler *adaptor.ListingHandler, reviewHandler *adaptor.ReviewHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/listings", listingHandler.GetListings)
	r.Get("/api/listings/{code}", listingHandler.GetListingByCode)
	r.Get("/api/listings/{code}/reviews", reviewHandler.GetListingReviews)
	r.Get("/api/destinations", listingHandler.GetDestinations)
	r.Get("/api/categories", listingHandler.GetCategories)
}
