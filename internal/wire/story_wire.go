package wire

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/adaptor"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/middleware"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStory(r chi.Router, storyHandler *adaptor.StoryHandler, config *utils.Config, log *zap.Logger) {
	// Public: only approved stories are listed; anonymous detail reads see
	// approved stories only
	r.Get("/api/stories", storyHandler.List)
	r.Get("/api/stories/{slug}", storyHandler.GetBySlug)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/stories", storyHandler.Create)
		r.Get("/api/user/stories", storyHandler.ListMine)
		r.Put("/api/stories/{id}", storyHandler.Update)
		r.Put("/api/stories/{id}/translations", storyHandler.UpsertTranslation)
		r.Delete("/api/stories/{id}", storyHandler.Delete)
	})

	// Admin moderation
	r.Route("/api/admin/stories", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		r.Put("/{id}/status", storyHandler.Moderate)
	})
}
