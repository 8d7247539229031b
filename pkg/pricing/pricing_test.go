package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func openCard() RateCard {
	return RateCard{
		BasePrice:      100,
		Currency:       "USD",
		MinBookingDays: 1,
		IsAvailable:    true,
		IsBookable:     true,
	}
}

func TestQuoteBooking_TwoDayRange(t *testing.T) {
	got, err := QuoteBooking(openCard(), day("2025-01-01"), dayPtr("2025-01-03"), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, got.Units)
	assert.Equal(t, 100.0, got.PricePerUnit)
	assert.Equal(t, 400.0, got.TotalPrice)
	assert.Equal(t, "USD", got.Currency)
}

func TestQuoteBooking_MinBookingDaysFloor(t *testing.T) {
	card := openCard()
	card.MinBookingDays = 5

	got, err := QuoteBooking(card, day("2025-01-01"), dayPtr("2025-01-03"), 2)

	require.NoError(t, err)
	assert.Equal(t, 5, got.Units)
	assert.Equal(t, 1000.0, got.TotalPrice)
}

func TestQuoteBooking_MinDaysDoesNotCapLongerStays(t *testing.T) {
	card := openCard()
	card.MinBookingDays = 2

	got, err := QuoteBooking(card, day("2025-01-01"), dayPtr("2025-01-08"), 1)

	require.NoError(t, err)
	assert.Equal(t, 7, got.Units)
}

func TestQuoteBooking_Units(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       *time.Time
		minDays   int
		wantUnits int
	}{
		{"no end date means one unit", "2025-06-01", nil, 3, 1},
		{"same day counts as one day", "2025-06-01", dayPtr("2025-06-01"), 1, 1},
		{"misconfigured zero min still charges a day", "2025-06-01", dayPtr("2025-06-01"), 0, 1},
		{"week-long stay", "2025-06-01", dayPtr("2025-06-08"), 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := openCard()
			card.MinBookingDays = tt.minDays

			got, err := QuoteBooking(card, day(tt.start), tt.end, 1)

			require.NoError(t, err)
			assert.Equal(t, tt.wantUnits, got.Units)
		})
	}
}

func TestQuoteBooking_DiscountSelection(t *testing.T) {
	t.Run("discount wins over base", func(t *testing.T) {
		card := openCard()
		card.DiscountedPrice = floatPtr(80)

		got, err := QuoteBooking(card, day("2025-01-01"), nil, 1)

		require.NoError(t, err)
		assert.Equal(t, 80.0, got.PricePerUnit)
	})

	t.Run("zero discount is a valid price, not absent", func(t *testing.T) {
		card := openCard()
		card.DiscountedPrice = floatPtr(0)

		got, err := QuoteBooking(card, day("2025-01-01"), nil, 3)

		require.NoError(t, err)
		assert.Equal(t, 0.0, got.PricePerUnit)
		assert.Equal(t, 0.0, got.TotalPrice)
	})
}

func TestQuoteBooking_Gates(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		bookable  bool
	}{
		{"not available", false, true},
		{"not bookable", true, false},
		{"neither", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := openCard()
			card.IsAvailable = tt.available
			card.IsBookable = tt.bookable

			_, err := QuoteBooking(card, day("2025-01-01"), nil, 1)

			assert.ErrorIs(t, err, ErrServiceNotBookable)
		})
	}
}

func TestQuoteBooking_CapacityGate(t *testing.T) {
	card := openCard()
	card.MaxCapacity = intPtr(4)

	_, err := QuoteBooking(card, day("2025-01-01"), dayPtr("2025-01-03"), 10)

	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestQuoteBooking_CapacityBoundary(t *testing.T) {
	card := openCard()
	card.MaxCapacity = intPtr(4)

	got, err := QuoteBooking(card, day("2025-01-01"), nil, 4)

	require.NoError(t, err)
	assert.Equal(t, 400.0, got.TotalPrice)
}

func TestQuoteBooking_InvalidDateRange(t *testing.T) {
	card := openCard()
	card.MinBookingDays = 5
	card.DiscountedPrice = floatPtr(80)

	_, err := QuoteBooking(card, day("2025-01-10"), dayPtr("2025-01-05"), 2)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestQuoteBooking_InvalidGuests(t *testing.T) {
	_, err := QuoteBooking(openCard(), day("2025-01-01"), nil, 0)

	assert.ErrorIs(t, err, ErrInvalidGuests)
}

func TestQuoteBooking_UTCCalendarDays(t *testing.T) {
	// 23:00-05:00 on Jan 1 is already Jan 2 in UTC; the range below spans a
	// single UTC calendar day regardless of the wall-clock offsets.
	loc := time.FixedZone("UTC-5", -5*60*60)
	start := time.Date(2025, 1, 1, 23, 0, 0, 0, loc)
	end := time.Date(2025, 1, 3, 1, 0, 0, 0, time.UTC)

	got, err := QuoteBooking(openCard(), start, &end, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Units)
}
