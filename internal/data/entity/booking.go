package entity

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment methods that settle at submission time. Deferred methods leave
// the booking pending until the external payment callback confirms funds.
var immediateMethods = map[string]bool{
	"credit_card": true,
	"paypal":      true,
}

// PaymentStatusForMethod derives the initial payment status from the
// chosen method.
func PaymentStatusForMethod(method string) PaymentStatus {
	if immediateMethods[method] {
		return PaymentStatusCompleted
	}
	return PaymentStatusPending
}

// childRate is the price multiplier for children. Infants travel free and
// never affect the total.
const childRate = 0.7

// ComputeTotalPrice applies the tiered pricing formula.
func ComputeTotalPrice(basePrice float64, adults, children int) float64 {
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}
	return basePrice*float64(adults) + basePrice*childRate*float64(children)
}

// Booking is a reservation of one Listing for a date/time and party.
// Created once at submission; only the external payment callback mutates
// it afterwards (pending -> completed). No cancellation state exists.
type Booking struct {
	ID             string // store internal record id
	BookingID      string // server-generated reference
	ListingID      string // internal id of the listing, never the code
	UserID         string // internal id, empty when the caller reference was not one
	CheckInDate    time.Time
	CheckOutDate   time.Time
	Adults         int
	Children       int
	Infants        int
	TotalPrice     float64
	PaymentMethod  string
	PaymentStatus  PaymentStatus
	TransactionID  *string
	PaidDate       *time.Time
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	PickupLocation string
	CreatedAt      time.Time
}

// GuestCount is the party size counted for capacity purposes.
func (b *Booking) GuestCount() int {
	return b.Adults + b.Children + b.Infants
}
