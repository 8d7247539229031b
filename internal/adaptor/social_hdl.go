package adaptor

import (
	"net/http"

	"github.com/AliHsynvv/airen-media-sub002/internal/usecase"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SocialHandler struct {
	service usecase.SocialService
	log     *zap.Logger
}

func NewSocialHandler(service usecase.SocialService, log *zap.Logger) *SocialHandler {
	return &SocialHandler{
		service: service,
		log:     log.With(zap.String("handler", "social")),
	}
}

// Follow handles POST /api/users/{id}/follow (protected, idempotent)
func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, followeeID, ok := h.followPair(w, r)
	if !ok {
		return
	}

	if err := h.service.Follow(r.Context(), followerID, followeeID); err != nil {
		writeServiceError(w, h.log, err, "follow user")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Unfollow handles DELETE /api/users/{id}/follow (protected, idempotent)
func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, followeeID, ok := h.followPair(w, r)
	if !ok {
		return
	}

	if err := h.service.Unfollow(r.Context(), followerID, followeeID); err != nil {
		writeServiceError(w, h.log, err, "unfollow user")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetProfile handles GET /api/profiles/{username} (public)
func (h *SocialHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), username)
	if err != nil {
		writeServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// ListNotifications handles GET /api/notifications (protected)
func (h *SocialHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	notifications, err := h.service.ListNotifications(r.Context(), userID, parsePagination(r))
	if err != nil {
		writeServiceError(w, h.log, err, "list notifications")
		return
	}

	utils.ResponseSuccess(w, "success", notifications)
}

// UnreadCount handles GET /api/notifications/unread (protected)
func (h *SocialHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "count unread notifications")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]int64{"unread": count})
}

// MarkRead handles PUT /api/notifications/{id}/read (protected)
func (h *SocialHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid notification ID", nil)
		return
	}

	if err := h.service.MarkRead(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.log, err, "mark notification read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// MarkAllRead handles PUT /api/notifications/read (protected)
func (h *SocialHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.MarkAllRead(r.Context(), userID); err != nil {
		writeServiceError(w, h.log, err, "mark all notifications read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *SocialHandler) followPair(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	followerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	followeeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return uuid.Nil, uuid.Nil, false
	}

	return followerID, followeeID, true
}
