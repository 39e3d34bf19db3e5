package adaptor

import (
	"encoding/json"
	"net/http"

	"marine-booking/internal/dto/request"
	"marine-booking/internal/usecase"
	"marine-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// SubmitReview handles POST /api/reviews (public)
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "submit review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetListingReviews handles GET /api/listings/{code}/reviews (public)
func (h *ReviewHandler) GetListingReviews(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Listing code is required", nil)
		return
	}

	req := &request.PaginatedRequest{}
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	reviews, err := h.service.GetListingReviews(r.Context(), code, req)
	if err != nil {
		writeServiceError(w, h.log, err, "get listing reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetPendingReviews handles GET /api/admin/reviews/pending (moderator)
func (h *ReviewHandler) GetPendingReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetPendingReviews(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get pending reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// ApproveReview handles POST /api/admin/reviews/{id}/approve (moderator)
func (h *ReviewHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	req := decodeModerationRequest(r)

	review, err := h.service.ApproveReview(r.Context(), reviewID, req.Notes)
	if err != nil {
		writeServiceError(w, h.log, err, "approve review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// RejectReview handles POST /api/admin/reviews/{id}/reject (moderator)
func (h *ReviewHandler) RejectReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	req := decodeModerationRequest(r)

	review, err := h.service.RejectReview(r.Context(), reviewID, req.Notes)
	if err != nil {
		writeServiceError(w, h.log, err, "reject review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// decodeModerationRequest tolerates an empty body; approval notes are
// optional and the service enforces the rejection notes rule.
func decodeModerationRequest(r *http.Request) request.ModerateReviewRequest {
	var req request.ModerateReviewRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	return req
}
