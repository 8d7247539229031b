package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/internal/usecase"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CountryHandler struct {
	service usecase.CountryService
	log     *zap.Logger
}

func NewCountryHandler(service usecase.CountryService, log *zap.Logger) *CountryHandler {
	return &CountryHandler{
		service: service,
		log:     log.With(zap.String("handler", "country")),
	}
}

// Create handles POST /api/admin/countries (admin only)
func (h *CountryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCountryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	country, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create country")
		return
	}

	utils.ResponseCreated(w, "success", country)
}

// GetBySlug handles GET /api/countries/{slug}?locale= (public)
func (h *CountryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slugVal := chi.URLParam(r, "slug")
	if slugVal == "" {
		utils.ResponseBadRequest(w, "Country slug is required", nil)
		return
	}

	country, err := h.service.GetBySlug(r.Context(), slugVal, requestedLocale(r))
	if err != nil {
		writeServiceError(w, h.log, err, "get country")
		return
	}

	utils.ResponseSuccess(w, "success", country)
}

// List handles GET /api/countries?locale=&page=&per_page= (public)
func (h *CountryHandler) List(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.List(r.Context(), requestedLocale(r), parsePagination(r))
	if err != nil {
		writeServiceError(w, h.log, err, "list countries")
		return
	}

	utils.ResponseSuccess(w, "success", countries)
}

// Update handles PUT /api/admin/countries/{code} (admin only)
func (h *CountryHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Country code is required", nil)
		return
	}

	var req request.UpdateCountryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	country, err := h.service.Update(r.Context(), code, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update country")
		return
	}

	utils.ResponseSuccess(w, "success", country)
}

// UpsertTranslation handles PUT /api/admin/countries/{code}/translations (admin only)
func (h *CountryHandler) UpsertTranslation(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Country code is required", nil)
		return
	}

	var req request.UpsertTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpsertTranslation(r.Context(), code, &req); err != nil {
		writeServiceError(w, h.log, err, "upsert translation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
