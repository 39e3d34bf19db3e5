package repository

import (
	"context"
	"fmt"
	"time"

	"marine-booking/internal/data/entity"
	"marine-booking/pkg/store"

	"go.uber.org/zap"
)

const bookingCollection = "bookings"

const (
	dateLayout = "2006-01-02"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	// FindByBookingID looks a booking up by its generated reference.
	// Absent booking returns (nil, nil), never an error.
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	// FindByUserID returns one page of a traveler's bookings plus the
	// total number of fetched matches.
	FindByUserID(ctx context.Context, userID string, page, perPage int) ([]*entity.Booking, int, error)
	// RecordPayment stamps the transaction id, paid date and completed
	// status on an existing booking record.
	RecordPayment(ctx context.Context, id, transactionID string, paidDate time.Time) (*entity.Booking, error)
}

type bookingRepository struct {
	st         store.Store
	fetchLimit int
	log        *zap.Logger
}

func NewBookingRepository(st store.Store, fetchLimit int, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		st:         st,
		fetchLimit: fetchLimit,
		log:        log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	fields := map[string]any{
		"bookingId":     booking.BookingID,
		"listing":       []string{booking.ListingID},
		"checkInDate":   booking.CheckInDate.Format(dateLayout),
		"checkOutDate":  booking.CheckOutDate.Format(dateLayout),
		"adults":        booking.Adults,
		"children":      booking.Children,
		"infants":       booking.Infants,
		"totalPrice":    booking.TotalPrice,
		"paymentMethod": booking.PaymentMethod,
		"paymentStatus": string(booking.PaymentStatus),
		"createdAt":     booking.CreatedAt.Format(time.RFC3339),
	}

	// The user link is omitted entirely, not nulled, when the caller
	// reference was not an internal identifier.
	if booking.UserID != "" {
		fields["user"] = []string{booking.UserID}
	}
	if booking.ContactName != "" {
		fields["contactName"] = booking.ContactName
	}
	if booking.ContactEmail != "" {
		fields["contactEmail"] = booking.ContactEmail
	}
	if booking.ContactPhone != "" {
		fields["contactPhone"] = booking.ContactPhone
	}
	if booking.PickupLocation != "" {
		fields["pickupLocation"] = booking.PickupLocation
	}

	rec, err := r.st.Create(ctx, bookingCollection, fields)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
			zap.String("listing_id", booking.ListingID),
		)
		return nil, fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return bookingFromRecord(rec), nil
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	q := store.Query{
		Predicates: []store.Predicate{store.Equals("bookingId", bookingID)},
		MaxRecords: 1,
	}

	records, err := r.st.Select(ctx, bookingCollection, q)
	if err != nil {
		r.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	return bookingFromRecord(records[0]), nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string, page, perPage int) ([]*entity.Booking, int, error) {
	q := store.Query{
		Predicates: []store.Predicate{store.Contains("user", userID)},
		Sort:       &store.Sort{Field: "createdAt", Direction: "desc"},
		MaxRecords: r.fetchLimit,
	}

	records, err := r.st.Select(ctx, bookingCollection, q)
	if err != nil {
		r.log.Warn("Booking history query degraded to empty result",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return []*entity.Booking{}, 0, nil
	}

	pageRecords := store.Paginate(records, page, perPage)

	bookings := make([]*entity.Booking, len(pageRecords))
	for i, rec := range pageRecords {
		bookings[i] = bookingFromRecord(rec)
	}

	return bookings, len(records), nil
}

func (r *bookingRepository) RecordPayment(ctx context.Context, id, transactionID string, paidDate time.Time) (*entity.Booking, error) {
	fields := map[string]any{
		"paymentStatus": string(entity.PaymentStatusCompleted),
		"transactionId": transactionID,
		"paidDate":      paidDate.Format(time.RFC3339),
	}

	rec, err := r.st.Update(ctx, bookingCollection, id, fields)
	if err != nil {
		r.log.Error("Failed to record payment",
			zap.Error(err),
			zap.String("record_id", id),
			zap.String("transaction_id", transactionID),
		)
		return nil, fmt.Errorf("record payment for %s: %w", id, err)
	}

	return bookingFromRecord(rec), nil
}

func bookingFromRecord(rec store.Record) *entity.Booking {
	booking := &entity.Booking{
		ID:             rec.ID,
		BookingID:      rec.String("bookingId"),
		ListingID:      rec.FirstLink("listing"),
		UserID:         rec.FirstLink("user"),
		Adults:         rec.Int("adults"),
		Children:       rec.Int("children"),
		Infants:        rec.Int("infants"),
		TotalPrice:     rec.Float("totalPrice"),
		PaymentMethod:  rec.String("paymentMethod"),
		PaymentStatus:  entity.PaymentStatus(rec.String("paymentStatus")),
		ContactName:    rec.String("contactName"),
		ContactEmail:   rec.String("contactEmail"),
		ContactPhone:   rec.String("contactPhone"),
		PickupLocation: rec.String("pickupLocation"),
	}

	if t, ok := rec.Time("checkInDate"); ok {
		booking.CheckInDate = t
	}
	if t, ok := rec.Time("checkOutDate"); ok {
		booking.CheckOutDate = t
	}
	if t, ok := rec.Time("createdAt"); ok {
		booking.CreatedAt = t
	}
	if t, ok := rec.Time("paidDate"); ok {
		booking.PaidDate = &t
	}
	if tx := rec.String("transactionId"); tx != "" {
		booking.TransactionID = &tx
	}

	return booking
}
