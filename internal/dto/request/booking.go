package request

type CreateBookingRequest struct {
	// ListingRef accepts the listing's external code or an internal
	// record id; codes are resolved before persisting.
	ListingRef     string  `json:"listing_ref" validate:"required"`
	UserRef        string  `json:"user_ref,omitempty"`
	CheckInDate    string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Adults         int     `json:"adults" validate:"required,min=1"`
	Children       int     `json:"children" validate:"min=0"`
	Infants        int     `json:"infants" validate:"min=0"`
	BasePrice      float64 `json:"base_price" validate:"required,gt=0"`
	PaymentMethod  string  `json:"payment_method" validate:"required,oneof=credit_card paypal cash_on_arrival bank_transfer"`
	ContactName    string  `json:"contact_name" validate:"required,max=120"`
	ContactEmail   string  `json:"contact_email" validate:"required,email"`
	ContactPhone   string  `json:"contact_phone,omitempty" validate:"omitempty,max=30"`
	PickupLocation string  `json:"pickup_location,omitempty" validate:"omitempty,max=200"`
}

// PaymentCallbackRequest is what the external payment provider posts
// after confirming funds.
type PaymentCallbackRequest struct {
	BookingID     string `json:"booking_id" validate:"required"`
	TransactionID string `json:"transaction_id" validate:"required"`
}
