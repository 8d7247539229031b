package response

import (
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
)

type BusinessResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Description     *string   `json:"description,omitempty"`
	Address         *string   `json:"address,omitempty"`
	City            *string   `json:"city,omitempty"`
	CountryCode     *string   `json:"country_code,omitempty"`
	ContactEmail    *string   `json:"contact_email,omitempty"`
	ContactPhone    *string   `json:"contact_phone,omitempty"`
	BasePrice       float64   `json:"base_price"`
	DiscountedPrice *float64  `json:"discounted_price,omitempty"`
	Currency        string    `json:"currency"`
	MinBookingDays  int       `json:"min_booking_days"`
	MaxCapacity     *int      `json:"max_capacity,omitempty"`
	IsAvailable     bool      `json:"is_available"`
	IsBookable      bool      `json:"is_bookable"`
	CreatedAt       time.Time `json:"created_at"`
}

func BusinessToResponse(business *entity.Business) BusinessResponse {
	return BusinessResponse{
		ID:              business.ID.String(),
		OwnerID:         business.OwnerID.String(),
		Slug:            business.Slug,
		Name:            business.Name,
		Category:        business.Category,
		Description:     business.Description,
		Address:         business.Address,
		City:            business.City,
		CountryCode:     business.CountryCode,
		ContactEmail:    business.ContactEmail,
		ContactPhone:    business.ContactPhone,
		BasePrice:       business.BasePrice,
		DiscountedPrice: business.DiscountedPrice,
		Currency:        business.Currency,
		MinBookingDays:  business.MinBookingDays,
		MaxCapacity:     business.MaxCapacity,
		IsAvailable:     business.IsAvailable,
		IsBookable:      business.IsBookable,
		CreatedAt:       business.CreatedAt,
	}
}
