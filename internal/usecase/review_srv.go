package usecase

import (
	"context"
	"strings"
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

type ReviewService interface {
	SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetListingReviews(ctx context.Context, listingRef string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)

	// Moderator transitions. Both only apply to pending reviews;
	// approved and rejected are terminal.
	GetPendingReviews(ctx context.Context) ([]response.ReviewResponse, error)
	ApproveReview(ctx context.Context, reviewID, notes string) (*response.ReviewResponse, error)
	RejectReview(ctx context.Context, reviewID, notes string) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(utils.FormatValidationErrors(errs))
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperror.Validation("rating must be between 1 and 5")
	}

	listing, err := resolveListing(ctx, s.repo.Listing, req.ListingRef)
	if err != nil {
		return nil, err
	}

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

	// An optional booking reference ties the review to the stay; an
	// unknown reference is dropped rather than failing the submission.
	bookingID := ""
	if req.BookingID != "" {
		booking, err := s.repo.Booking.FindByBookingID(ctx, req.BookingID)
		if err != nil {
			return nil, apperror.Store("record store unavailable", err)
		}
		if booking != nil {
			bookingID = booking.ID
		} else {
			s.log.Warn("Review references unknown booking; omitting link",
				zap.String("booking_id", req.BookingID),
			)
		}
	}

	review := &entity.Review{
		ReviewID:       utils.GenerateReviewID(),
		UserID:         userID,
		ListingID:      listing.ID,
		BookingID:      bookingID,
		Rating:         req.Rating,
		Title:          req.Title,
		Text:           req.Text,
		SubmittedDate:  time.Now(),
		ApprovalStatus: entity.ApprovalStatusPending,
	}

	created, err := s.repo.Review.Create(ctx, review)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	s.log.Info("Review submitted",
		zap.String("review_id", created.ReviewID),
		zap.String("listing_id", created.ListingID),
		zap.Int("rating", created.Rating),
	)

	resp := response.ReviewToResponse(created, listing.Title)
	return &resp, nil
}

func (s *reviewService) GetListingReviews(ctx context.Context, listingRef string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	listing, err := resolveListing(ctx, s.repo.Listing, listingRef)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.Limit()

	reviews, total, err := s.repo.Review.FindApprovedByListing(ctx, listing.ID, page, perPage)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review, listing.Title)
	}

	return response.NewPaginatedResponse(reviewResponses, page, perPage, int64(total)), nil
}

func (s *reviewService) GetPendingReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindPending(ctx)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	out := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = response.ReviewToResponse(review, s.listingTitle(ctx, review.ListingID))
	}

	return out, nil
}

func (s *reviewService) ApproveReview(ctx context.Context, reviewID, notes string) (*response.ReviewResponse, error) {
	review, err := s.loadPending(ctx, reviewID, "approved")
	if err != nil {
		return nil, err
	}

	var notesPtr *string
	if strings.TrimSpace(notes) != "" {
		notesPtr = &notes
	}
	approvedDate := time.Now()

	updated, err := s.repo.Review.SetModeration(ctx, review.ID, entity.ApprovalStatusApproved, notesPtr, &approvedDate)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	s.log.Info("Review approved",
		zap.String("review_id", reviewID),
		zap.String("listing_id", updated.ListingID),
	)

	resp := response.ReviewToResponse(updated, s.listingTitle(ctx, updated.ListingID))
	return &resp, nil
}

func (s *reviewService) RejectReview(ctx context.Context, reviewID, notes string) (*response.ReviewResponse, error) {
	// Rejections always carry an explanation for the traveler.
	if strings.TrimSpace(notes) == "" {
		return nil, apperror.Validation("moderation notes are required to reject a review")
	}

	review, err := s.loadPending(ctx, reviewID, "rejected")
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Review.SetModeration(ctx, review.ID, entity.ApprovalStatusRejected, &notes, nil)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	s.log.Info("Review rejected",
		zap.String("review_id", reviewID),
		zap.String("listing_id", updated.ListingID),
	)

	resp := response.ReviewToResponse(updated, s.listingTitle(ctx, updated.ListingID))
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) loadPending(ctx context.Context, reviewID, action string) (*entity.Review, error) {
	review, err := s.repo.Review.FindByReviewID(ctx, reviewID)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}
	if review == nil {
		return nil, apperror.NotFound("review " + reviewID + " not found")
	}

	if review.ApprovalStatus != entity.ApprovalStatusPending {
		return nil, apperror.InvalidTransition(
			"review is " + string(review.ApprovalStatus) + " and cannot be " + action)
	}

	return review, nil
}

func (s *reviewService) listingTitle(ctx context.Context, listingID string) string {
	if listingID == "" {
		return ""
	}

	listing, _ := s.repo.Listing.FindByID(ctx, listingID)
	if listing == nil {
		return ""
	}
	return listing.Title
}
