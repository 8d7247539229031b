package request

type CreateBusinessRequest struct {
	Name            string   `json:"name" validate:"required,max=150"`
	Category        string   `json:"category" validate:"required,max=50"`
	Description     *string  `json:"description,omitempty"`
	Address         *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	City            *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	CountryCode     *string  `json:"country_code,omitempty" validate:"omitempty,len=2,alpha"`
	ContactEmail    *string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone    *string  `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	BasePrice       float64  `json:"base_price" validate:"required,gt=0"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty" validate:"omitempty,gte=0"`
	Currency        string   `json:"currency" validate:"required,len=3"`
	MinBookingDays  int      `json:"min_booking_days" validate:"gte=0"`
	MaxCapacity     *int     `json:"max_capacity,omitempty" validate:"omitempty,gte=1"`
	IsAvailable     bool     `json:"is_available"`
	IsBookable      bool     `json:"is_bookable"`
}

type UpdateBusinessRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,max=150"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Description     *string  `json:"description,omitempty"`
	Address         *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	City            *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	CountryCode     *string  `json:"country_code,omitempty" validate:"omitempty,len=2,alpha"`
	ContactEmail    *string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone    *string  `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	BasePrice       *float64 `json:"base_price,omitempty" validate:"omitempty,gt=0"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty" validate:"omitempty,gte=0"`
	Currency        *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	MinBookingDays  *int     `json:"min_booking_days,omitempty" validate:"omitempty,gte=0"`
	MaxCapacity     *int     `json:"max_capacity,omitempty" validate:"omitempty,gte=1"`
	IsAvailable     *bool    `json:"is_available,omitempty"`
	IsBookable      *bool    `json:"is_bookable,omitempty"`
}
