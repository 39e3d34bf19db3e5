package request

type CreateReviewRequest struct {
	ListingRef string `json:"listing_ref" validate:"required"`
	UserRef    string `json:"user_ref,omitempty"`
	BookingID  string `json:"booking_id,omitempty"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Title      string `json:"title" validate:"required,max=120"`
	Text       string `json:"text" validate:"required,max=2000"`
}

type ModerateReviewRequest struct {
	Notes string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
