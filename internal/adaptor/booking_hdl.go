package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/internal/usecase"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Quote handles POST /api/bookings/quote (public)
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "quote booking")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// Create handles POST /api/bookings (protected)
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetByReference handles GET /api/bookings/{reference} (protected)
func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := h.authed(w, r)
	if !ok {
		return
	}

	reference := chi.URLParam(r, "reference")
	if reference == "" {
		utils.ResponseBadRequest(w, "Booking reference is required", nil)
		return
	}

	booking, err := h.service.GetByReference(r.Context(), userID, role, reference)
	if err != nil {
		writeServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListMine handles GET /api/user/bookings (protected)
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.ListMine(r.Context(), userID, parsePagination(r))
	if err != nil {
		writeServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ListForBusiness handles GET /api/businesses/{id}/bookings (protected, owner)
func (h *BookingHandler) ListForBusiness(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := h.authed(w, r)
	if !ok {
		return
	}

	businessID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid business ID", nil)
		return
	}

	bookings, err := h.service.ListForBusiness(r.Context(), userID, role, businessID, parsePagination(r))
	if err != nil {
		writeServiceError(w, h.log, err, "list business bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// Confirm handles PUT /api/bookings/{id}/confirm (protected, listing owner)
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := h.authed(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	booking, err := h.service.Confirm(r.Context(), userID, role, id)
	if err != nil {
		writeServiceError(w, h.log, err, "confirm booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Cancel handles PUT /api/bookings/{id}/cancel (protected, requester or owner)
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := h.authed(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	booking, err := h.service.Cancel(r.Context(), userID, role, id)
	if err != nil {
		writeServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

func (h *BookingHandler) authed(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, "", false
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	return userID, role, true
}
