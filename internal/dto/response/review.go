package response

import (
	"time"

	"marine-booking/internal/data/entity"
)

type ReviewResponse struct {
	ReviewID       string     `json:"review_id"`
	ListingTitle   string     `json:"listing_title,omitempty"`
	Rating         int        `json:"rating"`
	Title          string     `json:"title"`
	Text           string     `json:"text"`
	SubmittedDate  time.Time  `json:"submitted_date"`
	ApprovalStatus string     `json:"approval_status"`
	AdminNotes     *string    `json:"admin_notes,omitempty"`
	ApprovedDate   *time.Time `json:"approved_date,omitempty"`
}

func ReviewToResponse(review *entity.Review, listingTitle string) ReviewResponse {
	return ReviewResponse{
		ReviewID:       review.ReviewID,
		ListingTitle:   listingTitle,
		Rating:         review.Rating,
		Title:          review.Title,
		Text:           review.Text,
		SubmittedDate:  review.SubmittedDate,
		ApprovalStatus: string(review.ApprovalStatus),
		AdminNotes:     review.AdminNotes,
		ApprovedDate:   review.ApprovedDate,
	}
}
