// Package pricing computes booking quotes against a bookable service's rate
// card. Quotes are deterministic and side-effect free; availability locking
// and inventory are the caller's concern.
package pricing

import (
	"errors"
	"time"
)

var (
	// ErrServiceNotBookable means the availability or bookable gate is off.
	ErrServiceNotBookable = errors.New("service is not bookable")
	// ErrCapacityExceeded means the party size is over the service maximum.
	ErrCapacityExceeded = errors.New("guest count exceeds capacity")
	// ErrInvalidDateRange means the end date is before the start date.
	ErrInvalidDateRange = errors.New("end date before start date")
	// ErrInvalidGuests means the guest count is below one.
	ErrInvalidGuests = errors.New("guest count must be at least 1")
)

// RateCard is a snapshot of a bookable service's pricing fields. A nil
// DiscountedPrice means no discount; zero is a valid price and is not
// treated as absent.
type RateCard struct {
	BasePrice       float64
	DiscountedPrice *float64
	Currency        string
	MinBookingDays  int
	MaxCapacity     *int
	IsAvailable     bool
	IsBookable      bool
}

// Quote is the priced result of a booking request.
type Quote struct {
	PricePerUnit float64
	Units        int
	TotalPrice   float64
	Currency     string
}

// QuoteBooking prices a reservation for the given date range and party size.
//
// Day arithmetic is over UTC calendar dates, so the unit count does not
// depend on the server's local zone. A nil end date means a single unit; a
// same-day range counts as one day; MinBookingDays floors the unit count but
// never caps it. Gate and capacity checks run before any arithmetic.
func QuoteBooking(card RateCard, start time.Time, end *time.Time, guests int) (Quote, error) {
	if !card.IsAvailable || !card.IsBookable {
		return Quote{}, ErrServiceNotBookable
	}
	if guests < 1 {
		return Quote{}, ErrInvalidGuests
	}
	if card.MaxCapacity != nil && guests > *card.MaxCapacity {
		return Quote{}, ErrCapacityExceeded
	}

	units := 1
	if end != nil {
		startDay := toUTCDate(start)
		endDay := toUTCDate(*end)
		if endDay.Before(startDay) {
			return Quote{}, ErrInvalidDateRange
		}

		days := int(endDay.Sub(startDay).Hours() / 24)
		if days < 1 {
			days = 1
		}

		minDays := card.MinBookingDays
		if minDays < 1 {
			minDays = 1
		}

		units = days
		if minDays > units {
			units = minDays
		}
	}

	perUnit := card.BasePrice
	if card.DiscountedPrice != nil {
		perUnit = *card.DiscountedPrice
	}

	return Quote{
		PricePerUnit: perUnit,
		Units:        units,
		TotalPrice:   perUnit * float64(units) * float64(guests),
		Currency:     card.Currency,
	}, nil
}

func toUTCDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
