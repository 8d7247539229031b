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

type StoryHandler struct {
	service usecase.StoryService
	log     *zap.Logger
}

func NewStoryHandler(service usecase.StoryService, log *zap.Logger) *StoryHandler {
	return &StoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "story")),
	}
}

// Create handles POST /api/stories (protected)
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	story, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create story")
		return
	}

	utils.ResponseCreated(w, "success", story)
}

// GetBySlug handles GET /api/stories/{slug}?locale= (public; unapproved
// stories are visible only to their author and admins)
func (h *StoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slugVal := chi.URLParam(r, "slug")
	if slugVal == "" {
		utils.ResponseBadRequest(w, "Story slug is required", nil)
		return
	}

	// anonymous readers get uuid.Nil, which never matches an author
	requesterID, _ := utils.GetUserIDFromContext(r.Context())
	role, _ := utils.GetRoleFromContext(r.Context())

	story, err := h.service.GetBySlug(r.Context(), requesterID, role, slugVal, requestedLocale(r))
	if err != nil {
		writeServiceError(w, h.log, err, "get story")
		return
	}

	utils.ResponseSuccess(w, "success", story)
}

// List handles GET /api/stories?locale=&page=&per_page= (public)
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	stories, err := h.service.ListApproved(r.Context(), requestedLocale(r), parsePagination(r))
	if err != nil {
		writeServiceError(w, h.log, err, "list stories")
		return
	}

	utils.ResponseSuccess(w, "success", stories)
}

// ListMine handles GET /api/user/stories (protected)
func (h *StoryHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	stories, err := h.service.ListMine(r.Context(), userID, requestedLocale(r), parsePagination(r))
	if err != nil {
		writeServiceError(w, h.log, err, "list own stories")
		return
	}

	utils.ResponseSuccess(w, "success", stories)
}

// Update handles PUT /api/stories/{id} (protected, author or admin)
func (h *StoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, role, id, ok := h.authedWithID(w, r)
	if !ok {
		return
	}

	var req request.UpdateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	story, err := h.service.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update story")
		return
	}

	utils.ResponseSuccess(w, "success", story)
}

// UpsertTranslation handles PUT /api/stories/{id}/translations (protected)
func (h *StoryHandler) UpsertTranslation(w http.ResponseWriter, r *http.Request) {
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

// Moderate handles PUT /api/admin/stories/{id}/status (admin only)
func (h *StoryHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid story ID", nil)
		return
	}

	var req request.ModerateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	story, err := h.service.Moderate(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "moderate story")
		return
	}

	utils.ResponseSuccess(w, "success", story)
}

// Delete handles DELETE /api/stories/{id} (protected)
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, role, id, ok := h.authedWithID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, role, id); err != nil {
		writeServiceError(w, h.log, err, "delete story")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *StoryHandler) authedWithID(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, "", uuid.Nil, false
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid story ID", nil)
		return uuid.Nil, "", uuid.Nil, false
	}

	return userID, role, id, true
}
