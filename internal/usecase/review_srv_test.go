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

func newReviewEnv(t *testing.T) (*store.Memory, *repository.Repository, ReviewService) {
	t.Helper()

	mem := store.NewMemory()
	mem.Seed("listings", map[string]any{
		"code":  "SCUBA01",
		"title": "Reef Dive",
		"price": 100.0,
	})

	repo := repository.NewRepository(mem, 500, zap.NewNop())
	svc := NewReviewService(repo, zap.NewNop())

	return mem, repo, svc
}

func validReviewRequest() *request.CreateReviewRequest {
	return &request.CreateReviewRequest{
		ListingRef: "SCUBA01",
		Rating:     5,
		Title:      "Unforgettable",
		Text:       "Saw two turtles and a reef shark.",
	}
}

func TestSubmitReviewStartsPending(t *testing.T) {
	_, _, svc := newReviewEnv(t)

	resp, err := svc.SubmitReview(context.Background(), validReviewRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.ReviewID, "RV-"))
	assert.Equal(t, "pending", resp.ApprovalStatus)
	assert.Nil(t, resp.ApprovedDate)
}

func TestSubmitReviewUnknownListing(t *testing.T) {
	_, _, svc := newReviewEnv(t)

	req := validReviewRequest()
	req.ListingRef = "NOPE99"
	_, err := svc.SubmitReview(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSubmitReviewDropsUnknownBookingRef(t *testing.T) {
	_, repo, svc := newReviewEnv(t)

	req := validReviewRequest()
	req.BookingID = "BK-20260910-FFFFFFFF"
	resp, err := svc.SubmitReview(context.Background(), req)
	require.NoError(t, err)

	stored, err := repo.Review.FindByReviewID(context.Background(), resp.ReviewID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.BookingID)
}

func TestApproveReviewStampsApprovedDate(t *testing.T) {
	_, _, svc := newReviewEnv(t)

	created, err := svc.SubmitReview(context.Background(), validReviewRequest())
	require.NoError(t, err)

	approved, err := svc.ApproveReview(context.Background(), created.ReviewID, "")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.ApprovalStatus)
	assert.NotNil(t, approved.ApprovedDate)
}

func TestApprovedReviewsBecomeVisible(t *testing.T) {
	_, _, svc := newReviewEnv(t)

	created, err := svc.SubmitReview(context.Background(), validReviewRequest())
	require.NoError(t, err)

	// Pending reviews stay out of the public listing page.
	page, err := svc.GetListingReviews(context.Background(), "SCUBA01", &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	_, err = svc.ApproveReview(context.Background(), created.ReviewID, "")
	require.NoError(t, err)

	page, err = svc.GetListingReviews(context.Background(), "SCUBA01", &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, created.ReviewID, page.Data[0].ReviewID)
}

func TestRejectReviewRequiresNotes(t *testing.T) {
	_, _, svc := newReviewEnv(t)

	created, err := svc.SubmitReview(context.Background(), validReviewRequest())
	require.NoError(t, err)

	_, err = svc.RejectReview(context.Background(), created.ReviewID, "   ")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	// The failed rejection must leave the review pending.
	pending, err := svc.GetPendingReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "pending", pending[0].ApprovalStatus)
}

func TestRejectReviewRecordsNotes(t *testing.T) {
	_, _, svc := newReviewEnv(t)

	created, err := svc.SubmitReview(context.Background(), validReviewRequest())
	require.NoError(t, err)

	rejected, err := svc.RejectReview(context.Background(), created.ReviewID, "spam")
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.ApprovalStatus)
	require.NotNil(t, rejected.AdminNotes)
	assert.Equal(t, "spam", *rejected.AdminNotes)
}

func TestModerationIsTerminal(t *testing.T) {
	_, _, svc := newReviewEnv(t)

	created, err := svc.SubmitReview(context.Background(), validReviewRequest())
	require.NoError(t, err)

	_, err = svc.RejectReview(context.Background(), created.ReviewID, "spam")
	require.NoError(t, err)

	_, err = svc.ApproveReview(context.Background(), created.ReviewID, "")
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidTransition(err))

	_, err = svc.RejectReview(context.Background(), created.ReviewID, "still spam")
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidTransition(err))
}

func TestModerateUnknownReview(t *testing.T) {
	_, _, svc := newReviewEnv(t)

	_, err := svc.ApproveReview(context.Background(), "RV-20260910-FFFFFFFF", "")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	_, _, svc := newReviewEnv(t)

	req := validReviewRequest()
	req.Rating = 6
	_, err := svc.SubmitReview(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
