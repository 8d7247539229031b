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

type ArticleHandler struct {
	service usecase.ArticleService
	log     *zap.Logger
}

func NewArticleHandler(service usecase.ArticleService, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{
		service: service,
		log:     log.With(zap.String("handler", "article")),
	}
}

// Create handles POST /api/articles (protected)
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	article, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create article")
		return
	}

	utils.ResponseCreated(w, "success", article)
}

// GetBySlug handles GET /api/articles/{slug}?locale= (public)
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slugVal := chi.URLParam(r, "slug")
	if slugVal == "" {
		utils.ResponseBadRequest(w, "Article slug is required", nil)
		return
	}

	article, err := h.service.GetBySlug(r.Context(), slugVal, requestedLocale(r))
	if err != nil {
		writeServiceError(w, h.log, err, "get article")
		return
	}

	utils.ResponseSuccess(w, "success", article)
}

// List handles GET /api/articles?locale=&page=&per_page= (public)
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.List(r.Context(), requestedLocale(r), parsePagination(r))
	if err != nil {
		writeServiceError(w, h.log, err, "list articles")
		return
	}

	utils.ResponseSuccess(w, "success", articles)
}

// Update handles PUT /api/articles/{id} (protected, author or admin)
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, role, id, ok := h.authedWithID(w, r)
	if !ok {
		return
	}

	var req request.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	article, err := h.service.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update article")
		return
	}

	utils.ResponseSuccess(w, "success", article)
}

// UpsertTranslation handles PUT /api/articles/{id}/translations (protected)
func (h *ArticleHandler) UpsertTranslation(w http.ResponseWriter, r *http.Request) {
	userID, role, id, ok := h.authedWithID(w, r)
	if !ok {
		return
	}

	var req request.UpsertTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpsertTranslation(r.Context(), userID, role, id, &req); err != nil {
		writeServiceError(w, h.log, err, "upsert translation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Publish handles POST /api/articles/{id}/publish (protected)
func (h *ArticleHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID, role, id, ok := h.authedWithID(w, r)
	if !ok {
		return
	}

	article, err := h.service.Publish(r.Context(), userID, role, id)
	if err != nil {
		writeServiceError(w, h.log, err, "publish article")
		return
	}

	utils.ResponseSuccess(w, "success", article)
}

// Delete handles DELETE /api/articles/{id} (protected)
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, role, id, ok := h.authedWithID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, role, id); err != nil {
		writeServiceError(w, h.log, err, "delete article")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *ArticleHandler) authedWithID(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, "", uuid.Nil, false
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid article ID", nil)
		return uuid.Nil, "", uuid.Nil, false
	}

	return userID, role, id, true
}
