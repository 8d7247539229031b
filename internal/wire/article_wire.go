package wire

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/adaptor"
	"github.com/AliHsynvv/airen-media-sub002/pkg/middleware"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireArticle(r chi.Router, articleHandler *adaptor.ArticleHandler, config *utils.Config, log *zap.Logger) {
	// Public
	r.Get("/api/articles", articleHandler.List)
	r.Get("/api/articles/{slug}", articleHandler.GetBySlug)

	// Protected: authors manage their own articles, admins manage all
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/articles", articleHandler.Create)
		r.Put("/api/articles/{id}", articleHandler.Update)
		r.Put("/api/articles/{id}/translations", articleHandler.UpsertTranslation)
		r.Post("/api/articles/{id}/publish", articleHandler.Publish)
		r.Delete("/api/articles/{id}", articleHandler.Delete)
	})
}
