package wire

import (
	"marine-booking/internal/adaptor"
	"marine-booking/pkg/auth"
	"marine-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, verifier auth.Verifier, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Submit a new booking
	r.Post("/api/bookings", bookingHandler.SubmitBooking)

	// GET /api/bookings/{bookingId} - Look a booking up by reference
	r.Get("/api/bookings/{bookingId}", bookingHandler.GetBooking)

	// POST /api/payments/callback - External payment confirmation
	r.Post("/api/payments/callback", bookingHandler.PaymentCallback)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(verifier, log))

		// GET /api/user/bookings - Traveler's own booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})
}
