package wire

import (
	"marine-booking/internal/adaptor"
	"marine-booking/pkg/auth"
	"marine-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, verifier auth.Verifier, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/reviews - Submit a review (enters moderation queue)
	r.Post("/api/reviews", reviewHandler.SubmitReview)

	// ==================== MODERATOR ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Moderator(verifier, log))

		// GET /api/admin/reviews/pending - Moderation queue
		r.Get("/api/admin/reviews/pending", reviewHandler.GetPendingReviews)

		// POST /api/admin/reviews/{id}/approve - Publish a review
		r.Post("/api/admin/reviews/{id}/approve", reviewHandler.ApproveReview)

		// POST /api/admin/reviews/{id}/reject - Reject with notes
		r.Post("/api/admin/reviews/{id}/reject", reviewHandler.RejectReview)
	})
}
