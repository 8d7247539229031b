package response

import (
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/pricing"
)

type QuoteResponse struct {
	PricePerUnit float64 `json:"price_per_unit"`
	Units        int     `json:"units"`
	TotalPrice   float64 `json:"total_price"`
	Currency     string  `json:"currency"`
}

type BookingResponse struct {
	ID           string               `json:"id"`
	Reference    string               `json:"reference"`
	BusinessID   string               `json:"business_id"`
	UserID       string               `json:"user_id"`
	StartDate    string               `json:"start_date"`
	EndDate      *string              `json:"end_date,omitempty"`
	GuestsCount  int                  `json:"guests_count"`
	PricePerUnit float64              `json:"price_per_unit"`
	TotalPrice   float64              `json:"total_price"`
	Currency     string               `json:"currency"`
	Note         *string              `json:"note,omitempty"`
	Status       entity.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

// Helper converters
func QuoteToResponse(quote pricing.Quote) QuoteResponse {
	return QuoteResponse{
		PricePerUnit: quote.PricePerUnit,
		Units:        quote.Units,
		TotalPrice:   quote.TotalPrice,
		Currency:     quote.Currency,
	}
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           booking.ID.String(),
		Reference:    booking.Reference,
		BusinessID:   booking.BusinessID.String(),
		UserID:       booking.UserID.String(),
		StartDate:    booking.StartDate.Format("2006-01-02"),
		GuestsCount:  booking.GuestsCount,
		PricePerUnit: booking.PricePerUnit,
		TotalPrice:   booking.TotalPrice,
		Currency:     booking.Currency,
		Note:         booking.Note,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
	}

	if booking.EndDate != nil {
		end := booking.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}

	return resp
}
