package adaptor

import (
	"net/http"

	"marine-booking/internal/dto/request"
	"marine-booking/internal/usecase"
	"marine-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ListingHandler struct {
	service usecase.ListingService
	log     *zap.Logger
}

func NewListingHandler(service usecase.ListingService, log *zap.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		log:     log.With(zap.String("handler", "listing")),
	}
}

// GetListings handles GET /api/listings (public)
func (h *ListingHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ListingFilterRequest{
		Category: query.Get("category"),
		Location: query.Get("location"),
	}
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	if v := query.Get("min_price"); v != "" {
		minPrice := utils.ParseFloat(v, 0)
		req.MinPrice = &minPrice
	}
	if v := query.Get("max_price"); v != "" {
		maxPrice := utils.ParseFloat(v, 0)
		req.MaxPrice = &maxPrice
	}
	if v := query.Get("featured"); v != "" {
		featured := v == "true" || v == "1"
		req.Featured = &featured
	}

	listings, err := h.service.GetListings(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "get listings")
		return
	}

	utils.ResponseSuccess(w, "success", listings)
}

// GetListingByCode handles GET /api/listings/{code} (public)
func (h *ListingHandler) GetListingByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Listing code is required", nil)
		return
	}

	listing, err := h.service.GetListingByCode(r.Context(), code)
	if err != nil {
		writeServiceError(w, h.log, err, "get listing")
		return
	}

	utils.ResponseSuccess(w, "success", listing)
}

// GetDestinations handles GET /api/destinations (public)
func (h *ListingHandler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.service.GetDestinations(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get destinations")
		return
	}

	utils.ResponseSuccess(w, "success", destinations)
}

// GetCategories handles GET /api/categories (public)
func (h *ListingHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}
