package usecase

import (
	"context"
	"strings"
	"testing"

	"marine-booking/internal/data/repository"
	"marine-booking/internal/dto/request"
	"marine-booking/pkg/apperror"
	"marine-booking/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingEnv(t *testing.T) (*store.Memory, *repository.Repository, BookingService, string) {
	t.Helper()

	mem := store.NewMemory()
	listingID := mem.Seed("listings", map[string]any{
		"code":     "SCUBA01",
		"title":    "Reef Dive",
		"category": "Diving",
		"price":    100.0,
	})

	repo := repository.NewRepository(mem, 500, zap.NewNop())
	svc := NewBookingService(repo, zap.NewNop())

	return mem, repo, svc, listingID
}

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ListingRef:    "SCUBA01",
		CheckInDate:   "2026-09-10",
		CheckOutDate:  "2026-09-12",
		Adults:        2,
		Children:      1,
		Infants:       1,
		BasePrice:     100,
		PaymentMethod: "bank_transfer",
		ContactName:   "Ihzha Nara",
		ContactEmail:  "ihzha@example.com",
	}
}

func TestSubmitBookingResolvesListingCode(t *testing.T) {
	_, repo, svc, listingID := newBookingEnv(t)

	resp, err := svc.SubmitBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, strings.HasPrefix(resp.BookingID, "BK-"))
	assert.Equal(t, "Reef Dive", resp.ListingTitle)

	// The persisted link holds the internal listing id, never the code.
	stored, err := repo.Booking.FindByBookingID(context.Background(), resp.BookingID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, listingID, stored.ListingID)
	assert.NotEqual(t, "SCUBA01", stored.ListingID)
}

func TestSubmitBookingComputesTieredTotal(t *testing.T) {
	_, _, svc, _ := newBookingEnv(t)

	resp, err := svc.SubmitBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	assert.Equal(t, 270.0, resp.TotalPrice)
}

func TestSubmitBookingInfantsDoNotAffectTotal(t *testing.T) {
	_, _, svc, _ := newBookingEnv(t)

	req := validBookingRequest()
	req.Infants = 5
	resp, err := svc.SubmitBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 270.0, resp.TotalPrice)
	assert.Equal(t, 8, resp.GuestCount)
}

func TestSubmitBookingPaymentStatusByMethod(t *testing.T) {
	_, _, svc, _ := newBookingEnv(t)

	req := validBookingRequest()
	req.PaymentMethod = "credit_card"
	resp, err := svc.SubmitBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.PaymentStatus)

	req = validBookingRequest()
	req.PaymentMethod = "cash_on_arrival"
	resp, err = svc.SubmitBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.PaymentStatus)
}

func TestSubmitBookingUnknownListing(t *testing.T) {
	_, _, svc, _ := newBookingEnv(t)

	req := validBookingRequest()
	req.ListingRef = "NOPE99"
	_, err := svc.SubmitBooking(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSubmitBookingRejectsInvertedDates(t *testing.T) {
	_, _, svc, _ := newBookingEnv(t)

	req := validBookingRequest()
	req.CheckInDate = "2026-09-12"
	req.CheckOutDate = "2026-09-10"
	_, err := svc.SubmitBooking(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestSubmitBookingOmitsNonInternalUserRef(t *testing.T) {
	_, repo, svc, _ := newBookingEnv(t)

	req := validBookingRequest()
	req.UserRef = "user@example.com"
	resp, err := svc.SubmitBooking(context.Background(), req)
	require.NoError(t, err)

	stored, err := repo.Booking.FindByBookingID(context.Background(), resp.BookingID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.UserID)
}

func TestGetUserBookingsFiltersByUser(t *testing.T) {
	mem, _, svc, _ := newBookingEnv(t)
	userID := mem.Seed("users", map[string]any{"email": "ihzha@example.com"})

	req := validBookingRequest()
	req.UserRef = userID
	_, err := svc.SubmitBooking(context.Background(), req)
	require.NoError(t, err)

	// A booking for someone else must not show up.
	other := validBookingRequest()
	_, err = svc.SubmitBooking(context.Background(), other)
	require.NoError(t, err)

	page, err := svc.GetUserBookings(context.Background(), userID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.EqualValues(t, 1, page.Pagination.Total)
}

func TestRecordPaymentCompletion(t *testing.T) {
	_, repo, svc, _ := newBookingEnv(t)

	resp, err := svc.SubmitBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.PaymentStatus)

	err = svc.RecordPaymentCompletion(context.Background(), resp.BookingID, "TX-123")
	require.NoError(t, err)

	stored, err := repo.Booking.FindByBookingID(context.Background(), resp.BookingID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.EqualValues(t, "completed", stored.PaymentStatus)
	require.NotNil(t, stored.TransactionID)
	assert.Equal(t, "TX-123", *stored.TransactionID)
	assert.NotNil(t, stored.PaidDate)
}

func TestRecordPaymentCompletionIsIdempotent(t *testing.T) {
	_, repo, svc, _ := newBookingEnv(t)

	resp, err := svc.SubmitBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)

	require.NoError(t, svc.RecordPaymentCompletion(context.Background(), resp.BookingID, "TX-123"))
	// Payment providers retry; the second confirmation is a no-op.
	require.NoError(t, svc.RecordPaymentCompletion(context.Background(), resp.BookingID, "TX-456"))

	stored, err := repo.Booking.FindByBookingID(context.Background(), resp.BookingID)
	require.NoError(t, err)
	require.NotNil(t, stored.TransactionID)
	assert.Equal(t, "TX-123", *stored.TransactionID)
}

func TestRecordPaymentCompletionUnknownBooking(t *testing.T) {
	_, _, svc, _ := newBookingEnv(t)

	err := svc.RecordPaymentCompletion(context.Background(), "BK-20260910-FFFFFFFF", "TX-123")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetBookingUnknown(t *testing.T) {
	_, _, svc, _ := newBookingEnv(t)

	_, err := svc.GetBooking(context.Background(), "BK-20260910-FFFFFFFF")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
