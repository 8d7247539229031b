package entity

import (
	"github.com/google/uuid"

	"github.com/AliHsynvv/airen-media-sub002/pkg/pricing"
)

// Business is a bookable listing (hotel, tour, restaurant) with a rate card.
// IsAvailable and IsBookable are independent gates; both must be true for a
// booking to be created.
type Business struct {
	Base
	OwnerID         uuid.UUID `db:"owner_id"`
	Slug            string    `db:"slug"`
	Name            string    `db:"name"`
	Category        string    `db:"category"`
	Description     *string   `db:"description"`
	Address         *string   `db:"address"`
	City            *string   `db:"city"`
	CountryCode     *string   `db:"country_code"`
	ContactEmail    *string   `db:"contact_email"`
	ContactPhone    *string   `db:"contact_phone"`
	BasePrice       float64   `db:"base_price"`
	DiscountedPrice *float64  `db:"discounted_price"`
	Currency        string    `db:"currency"`
	MinBookingDays  int       `db:"min_booking_days"`
	MaxCapacity     *int      `db:"max_capacity"`
	IsAvailable     bool      `db:"is_available"`
	IsBookable      bool      `db:"is_bookable"`
}

// RateCard snapshots the pricing fields for the quote calculator.
func (b *Business) RateCard() pricing.RateCard {
	return pricing.RateCard{
		BasePrice:       b.BasePrice,
		DiscountedPrice: b.DiscountedPrice,
		Currency:        b.Currency,
		MinBookingDays:  b.MinBookingDays,
		MaxCapacity:     b.MaxCapacity,
		IsAvailable:     b.IsAvailable,
		IsBookable:      b.IsBookable,
	}
}
