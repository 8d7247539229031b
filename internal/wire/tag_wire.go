package wire

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/adaptor"
	"github.com/AliHsynvv/airen-media-sub002/pkg/middleware"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTag(r chi.Router, tagHandler *adaptor.TagHandler, config *utils.Config, log *zap.Logger) {
	// Public
	r.Get("/api/tags", tagHandler.List)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/tags", tagHandler.Create)
	})
}
