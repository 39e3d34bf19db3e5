package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking and review identifiers are allocated server-side, inside the
// same operation that creates the record. The uuid fragment keeps
// concurrent submissions from colliding.

// GenerateBookingID creates a booking reference.
// Format: BK-YYYYMMDD-XXXXXXXX
func GenerateBookingID() string {
	datePart := time.Now().Format("20060102")
	randomPart := strings.ToUpper(uuid.NewString()[:8])

	return fmt.Sprintf("BK-%s-%s", datePart, randomPart)
}

// GenerateReviewID creates a review reference.
// Format: RV-YYYYMMDD-XXXXXXXX
func GenerateReviewID() string {
	datePart := time.Now().Format("20060102")
	randomPart := strings.ToUpper(uuid.NewString()[:8])

	return fmt.Sprintf("RV-%s-%s", datePart, randomPart)
}
