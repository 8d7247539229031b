package request

type QuoteRequest struct {
	BusinessID  string  `json:"business_id" validate:"required,uuid4"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	GuestsCount int     `json:"guests_count" validate:"required,min=1"`
}

type CreateBookingRequest struct {
	BusinessID  string  `json:"business_id" validate:"required,uuid4"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	GuestsCount int     `json:"guests_count" validate:"required,min=1"`
	Note        *string `json:"note,omitempty" validate:"omitempty,max=500"`
}
