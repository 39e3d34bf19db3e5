package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalPrice(t *testing.T) {
	// total = base*adults + 0.7*base*children
	assert.Equal(t, 270.0, ComputeTotalPrice(100, 2, 1))
	assert.Equal(t, 100.0, ComputeTotalPrice(100, 1, 0))
	assert.Equal(t, 0.0, ComputeTotalPrice(0, 3, 2))
	assert.Equal(t, 70.0, ComputeTotalPrice(100, 0, 1))
}

func TestComputeTotalPriceIgnoresNegativeCounts(t *testing.T) {
	assert.Equal(t, 100.0, ComputeTotalPrice(100, 1, -5))
	assert.Equal(t, 70.0, ComputeTotalPrice(100, -1, 1))
}

func TestPaymentStatusForMethod(t *testing.T) {
	assert.Equal(t, PaymentStatusCompleted, PaymentStatusForMethod("credit_card"))
	assert.Equal(t, PaymentStatusCompleted, PaymentStatusForMethod("paypal"))
	assert.Equal(t, PaymentStatusPending, PaymentStatusForMethod("cash_on_arrival"))
	assert.Equal(t, PaymentStatusPending, PaymentStatusForMethod("bank_transfer"))
	assert.Equal(t, PaymentStatusPending, PaymentStatusForMethod("unknown"))
}

func TestGuestCount(t *testing.T) {
	booking := &Booking{Adults: 2, Children: 1, Infants: 1}
	assert.Equal(t, 4, booking.GuestCount())
}
