package repository

import (
	"context"
	"fmt"
	"time"

	"marine-booking/internal/data/entity"
	"marine-booking/pkg/store"

	"go.uber.org/zap"
)

const reviewCollection = "reviews"

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)
	// FindByReviewID looks a review up by its generated reference.
	// Absent review returns (nil, nil), never an error.
	FindByReviewID(ctx context.Context, reviewID string) (*entity.Review, error)
	// FindApprovedByListing returns one page plus the total number of
	// fetched matches (bounded by the configured fetch limit).
	FindApprovedByListing(ctx context.Context, listingID string, page, perPage int) ([]*entity.Review, int, error)
	FindPending(ctx context.Context) ([]*entity.Review, error)
	// SetModeration writes the moderator decision on an existing record.
	SetModeration(ctx context.Context, id string, status entity.ApprovalStatus, notes *string, approvedDate *time.Time) (*entity.Review, error)
}

type reviewRepository struct {
	st         store.Store
	fetchLimit int
	log        *zap.Logger
}

func NewReviewRepository(st store.Store, fetchLimit int, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		st:         st,
		fetchLimit: fetchLimit,
		log:        log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	fields := map[string]any{
		"reviewId":       review.ReviewID,
		"listing":        []string{review.ListingID},
		"rating":         review.Rating,
		"title":          review.Title,
		"text":           review.Text,
		"submittedDate":  review.SubmittedDate.Format(time.RFC3339),
		"approvalStatus": string(review.ApprovalStatus),
	}

	if review.UserID != "" {
		fields["user"] = []string{review.UserID}
	}
	if review.BookingID != "" {
		fields["booking"] = []string{review.BookingID}
	}

	rec, err := r.st.Create(ctx, reviewCollection, fields)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("review_id", review.ReviewID),
			zap.String("listing_id", review.ListingID),
		)
		return nil, fmt.Errorf("create review %s: %w", review.ReviewID, err)
	}

	return reviewFromRecord(rec), nil
}

func (r *reviewRepository) FindByReviewID(ctx context.Context, reviewID string) (*entity.Review, error) {
	q := store.Query{
		Predicates: []store.Predicate{store.Equals("reviewId", reviewID)},
		MaxRecords: 1,
	}

	records, err := r.st.Select(ctx, reviewCollection, q)
	if err != nil {
		r.log.Error("Failed to find review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("find review %s: %w", reviewID, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	return reviewFromRecord(records[0]), nil
}

func (r *reviewRepository) FindApprovedByListing(ctx context.Context, listingID string, page, perPage int) ([]*entity.Review, int, error) {
	q := store.Query{
		Predicates: []store.Predicate{
			store.Contains("listing", listingID),
			store.Equals("approvalStatus", string(entity.ApprovalStatusApproved)),
		},
		Sort:       &store.Sort{Field: "submittedDate", Direction: "desc"},
		MaxRecords: r.fetchLimit,
	}

	records, err := r.st.Select(ctx, reviewCollection, q)
	if err != nil {
		r.log.Warn("Review query degraded to empty result",
			zap.Error(err),
			zap.String("listing_id", listingID),
		)
		return []*entity.Review{}, 0, nil
	}

	pageRecords := store.Paginate(records, page, perPage)

	reviews := make([]*entity.Review, len(pageRecords))
	for i, rec := range pageRecords {
		reviews[i] = reviewFromRecord(rec)
	}

	return reviews, len(records), nil
}

func (r *reviewRepository) FindPending(ctx context.Context) ([]*entity.Review, error) {
	q := store.Query{
		Predicates: []store.Predicate{
			store.Equals("approvalStatus", string(entity.ApprovalStatusPending)),
		},
		Sort:       &store.Sort{Field: "submittedDate", Direction: "asc"},
		MaxRecords: r.fetchLimit,
	}

	records, err := r.st.Select(ctx, reviewCollection, q)
	if err != nil {
		r.log.Warn("Pending review query degraded to empty result", zap.Error(err))
		return []*entity.Review{}, nil
	}

	reviews := make([]*entity.Review, len(records))
	for i, rec := range records {
		reviews[i] = reviewFromRecord(rec)
	}

	return reviews, nil
}

func (r *reviewRepository) SetModeration(ctx context.Context, id string, status entity.ApprovalStatus, notes *string, approvedDate *time.Time) (*entity.Review, error) {
	fields := map[string]any{
		"approvalStatus": string(status),
	}
	if notes != nil {
		fields["adminNotes"] = *notes
	}
	if approvedDate != nil {
		fields["approvedDate"] = approvedDate.Format(time.RFC3339)
	}

	rec, err := r.st.Update(ctx, reviewCollection, id, fields)
	if err != nil {
		r.log.Error("Failed to set moderation status",
			zap.Error(err),
			zap.String("record_id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("set moderation for %s: %w", id, err)
	}

	return reviewFromRecord(rec), nil
}

func reviewFromRecord(rec store.Record) *entity.Review {
	review := &entity.Review{
		ID:             rec.ID,
		ReviewID:       rec.String("reviewId"),
		UserID:         rec.FirstLink("user"),
		ListingID:      rec.FirstLink("listing"),
		BookingID:      rec.FirstLink("booking"),
		Rating:         rec.Int("rating"),
		Title:          rec.String("title"),
		Text:           rec.String("text"),
		ApprovalStatus: entity.ApprovalStatus(rec.String("approvalStatus")),
	}

	if t, ok := rec.Time("submittedDate"); ok {
		review.SubmittedDate = t
	}
	if t, ok := rec.Time("approvedDate"); ok {
		review.ApprovedDate = &t
	}
	if notes := rec.String("adminNotes"); notes != "" {
		review.AdminNotes = &notes
	}

	return review
}
