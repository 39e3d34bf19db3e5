package entity

import (
	"time"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Review is traveler feedback on a Listing, gated by moderation. Reviews
// are always created pending; approved and rejected are terminal.
type Review struct {
	ID             string // store internal record id
	ReviewID       string // server-generated reference
	UserID         string
	ListingID      string // internal id of the listing, never the code
	BookingID      string // optional link to the originating booking
	Rating         int    // 1-5
	Title          string
	Text           string
	SubmittedDate  time.Time
	ApprovalStatus ApprovalStatus
	AdminNotes     *string
	ApprovedDate   *time.Time
}
