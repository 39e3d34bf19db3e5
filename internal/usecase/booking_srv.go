package usecase

import (
	"context"
	"time"

	"marine-booking/internal/data/entity"
	"marine-booking/internal/data/repository"
	"marine-booking/internal/dto/request"
	"marine-booking/internal/dto/response"
	"marine-booking/pkg/apperror"
	"marine-booking/pkg/store"
	"marine-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// RecordPaymentCompletion is the single entry point for the external
	// payment callback: pending -> completed, stamping the transaction.
	RecordPaymentCompletion(ctx context.Context, bookingID, transactionID string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(utils.FormatValidationErrors(errs))
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return nil, apperror.Validation("check_in_date must be a YYYY-MM-DD date")
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return nil, apperror.Validation("check_out_date must be a YYYY-MM-DD date")
	}
	if checkOut.Before(checkIn) {
		return nil, apperror.Validation("check_out_date must not be before check_in_date")
	}

	// Resolve the listing; the stored link must hold the internal id,
	// never the external code.
	listing, err := resolveListing(ctx, s.repo.Listing, req.ListingRef)
	if err != nil {
		return nil, err
	}

	// Price is computed from the caller-supplied base price. A mismatch
	// with the listing's own price is an accepted risk; it is surfaced
	// in the logs rather than rejected.
	if listing.Price > 0 && listing.Price != req.BasePrice {
		s.log.Warn("Caller base price disagrees with listing price",
			zap.String("listing_code", listing.Code),
			zap.Float64("caller_price", req.BasePrice),
			zap.Float64("listing_price", listing.Price),
		)
	}

	totalPrice := entity.ComputeTotalPrice(req.BasePrice, req.Adults, req.Children)

	// The user link is attached only when the reference already is an
	// internal identifier; anything else is omitted with a warning.
	userID := ""
	if req.UserRef != "" {
		if store.IsRecordID(req.UserRef) {
			userID = req.UserRef
		} else {
			s.log.Warn("User reference is not an internal identifier; omitting link",
				zap.String("user_ref", req.UserRef),
			)
		}
	}

	booking := &entity.Booking{
		BookingID:      utils.GenerateBookingID(),
		ListingID:      listing.ID,
		UserID:         userID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		Adults:         req.Adults,
		Children:       req.Children,
		Infants:        req.Infants,
		TotalPrice:     totalPrice,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  entity.PaymentStatusForMethod(req.PaymentMethod),
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		PickupLocation: req.PickupLocation,
		CreatedAt:      time.Now(),
	}

	created, err := s.repo.Booking.Create(ctx, booking)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", created.BookingID),
		zap.String("listing_id", created.ListingID),
		zap.Int("guests", created.GuestCount()),
		zap.Float64("total_price", created.TotalPrice),
		zap.String("payment_status", string(created.PaymentStatus)),
	)

	resp := response.BookingToResponse(created, listing.Title)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}
	if booking == nil {
		return nil, apperror.NotFound("booking " + bookingID + " not found")
	}

	resp := response.BookingToResponse(booking, s.listingTitle(ctx, booking.ListingID))
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.Limit()

	bookings, total, err := s.repo.Booking.FindByUserID(ctx, userID, page, perPage)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking, s.listingTitle(ctx, booking.ListingID))
	}

	return response.NewPaginatedResponse(bookingResponses, page, perPage, int64(total)), nil
}

func (s *bookingService) RecordPaymentCompletion(ctx context.Context, bookingID, transactionID string) error {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return apperror.Store("record store unavailable", err)
	}
	if booking == nil {
		return apperror.NotFound("booking " + bookingID + " not found")
	}

	// Payment providers retry callbacks; confirming an already completed
	// booking is a no-op, not an error.
	if booking.PaymentStatus == entity.PaymentStatusCompleted {
		s.log.Info("Payment already recorded",
			zap.String("booking_id", bookingID),
			zap.String("transaction_id", transactionID),
		)
		return nil
	}

	if _, err := s.repo.Booking.RecordPayment(ctx, booking.ID, transactionID, time.Now()); err != nil {
		return apperror.Store("record store unavailable", err)
	}

	s.log.Info("Payment completed",
		zap.String("booking_id", bookingID),
		zap.String("transaction_id", transactionID),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) listingTitle(ctx context.Context, listingID string) string {
	if listingID == "" {
		return ""
	}

	listing, _ := s.repo.Listing.FindByID(ctx, listingID)
	if listing == nil {
		return ""
	}
	return listing.Title
}
