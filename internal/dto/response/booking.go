package response

import (
	"time"

	"marine-booking/internal/data/entity"
)

type BookingResponse struct {
	BookingID      string     `json:"booking_id"`
	ListingTitle   string     `json:"listing_title,omitempty"`
	CheckInDate    string     `json:"check_in_date"`
	CheckOutDate   string     `json:"check_out_date"`
	Adults         int        `json:"adults"`
	Children       int        `json:"children"`
	Infants        int        `json:"infants"`
	GuestCount     int        `json:"guest_count"`
	TotalPrice     float64    `json:"total_price"`
	PaymentMethod  string     `json:"payment_method"`
	PaymentStatus  string     `json:"payment_status"`
	TransactionID  *string    `json:"transaction_id,omitempty"`
	PaidDate       *time.Time `json:"paid_date,omitempty"`
	ContactName    string     `json:"contact_name,omitempty"`
	ContactEmail   string     `json:"contact_email,omitempty"`
	PickupLocation string     `json:"pickup_location,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, listingTitle string) BookingResponse {
	return BookingResponse{
		BookingID:      booking.BookingID,
		ListingTitle:   listingTitle,
		CheckInDate:    booking.CheckInDate.Format("2006-01-02"),
		CheckOutDate:   booking.CheckOutDate.Format("2006-01-02"),
		Adults:         booking.Adults,
		Children:       booking.Children,
		Infants:        booking.Infants,
		GuestCount:     booking.GuestCount(),
		TotalPrice:     booking.TotalPrice,
		PaymentMethod:  booking.PaymentMethod,
		PaymentStatus:  string(booking.PaymentStatus),
		TransactionID:  booking.TransactionID,
		PaidDate:       booking.PaidDate,
		ContactName:    booking.ContactName,
		ContactEmail:   booking.ContactEmail,
		PickupLocation: booking.PickupLocation,
		CreatedAt:      booking.CreatedAt,
	}
}
