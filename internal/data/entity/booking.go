package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a reservation against a business listing. PricePerUnit and
// TotalPrice are snapshots taken at booking time; later rate-card edits do
// not change existing bookings. Bookings are never hard-deleted.
type Booking struct {
	Base
	Reference    string        `db:"reference"`
	BusinessID   uuid.UUID     `db:"business_id"`
	UserID       uuid.UUID     `db:"user_id"`
	StartDate    time.Time     `db:"start_date"`
	EndDate      *time.Time    `db:"end_date"`
	GuestsCount  int           `db:"guests_count"`
	PricePerUnit float64       `db:"price_per_unit"`
	TotalPrice   float64       `db:"total_price"`
	Currency     string        `db:"currency"`
	Note         *string       `db:"note"`
	Status       BookingStatus `db:"status"`
}
