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

type BusinessHandler struct {
	service usecase.BusinessService
	log     *zap.Logger
}

func NewBusinessHandler(service usecase.BusinessService, log *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		service: service,
		log:     log.With(zap.String("handler", "business")),
	}
}

// Create handles POST /api/businesses (business or admin role)
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	business, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create business")
		return
	}

	utils.ResponseCreated(w, "success", business)
}

// GetBySlug handles GET /api/businesses/{slug} (public)
func (h *BusinessHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slugVal := chi.URLParam(r, "slug")
	if slugVal == "" {
		utils.ResponseBadRequest(w, "Business slug is required", nil)
		return
	}

	business, err := h.service.GetBySlug(r.Context(), slugVal)
	if err != nil {
		writeServiceError(w, h.log, err, "get business")
		return
	}

	utils.ResponseSuccess(w, "success", business)
}

// List handles GET /api/businesses?category=&page=&per_page= (public)
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	businesses, err := h.service.List(r.Context(), category, parsePagination(r))
	if err != nil {
		writeServiceError(w, h.log, err, "list businesses")
		return
	}

	utils.ResponseSuccess(w, "success", businesses)
}

// Update handles PUT /api/businesses/{id} (protected, owner or admin)
func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid business ID", nil)
		return
	}

	var req request.UpdateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	business, err := h.service.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update business")
		return
	}

	utils.ResponseSuccess(w, "success", business)
}
