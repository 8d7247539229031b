package wire

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/adaptor"
	"github.com/AliHsynvv/airen-media-sub002/pkg/middleware"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, config *utils.Config, log *zap.Logger) {
	// Public: anyone can price a stay before signing up
	r.Post("/api/bookings/quote", bookingHandler.Quote)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/bookings", bookingHandler.Create)
		r.Get("/api/bookings/{reference}", bookingHandler.GetByReference)
		r.Get("/api/user/bookings", bookingHandler.ListMine)
		r.Get("/api/businesses/{id}/bookings", bookingHandler.ListForBusiness)
		r.Put("/api/bookings/{id}/confirm", bookingHandler.Confirm)
		r.Put("/api/bookings/{id}/cancel", bookingHandler.Cancel)
	})
}
