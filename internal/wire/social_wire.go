package wire

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/adaptor"
	"github.com/AliHsynvv/airen-media-sub002/pkg/middleware"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSocial(r chi.Router, socialHandler *adaptor.SocialHandler, config *utils.Config, log *zap.Logger) {
	// Public
	r.Get("/api/profiles/{username}", socialHandler.GetProfile)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/users/{id}/follow", socialHandler.Follow)
		r.Delete("/api/users/{id}/follow", socialHandler.Unfollow)

		r.Get("/api/notifications", socialHandler.ListNotifications)
		r.Get("/api/notifications/unread", socialHandler.UnreadCount)
		r.Put("/api/notifications/read", socialHandler.MarkAllRead)
		r.Put("/api/notifications/{id}/read", socialHandler.MarkRead)
	})
}
