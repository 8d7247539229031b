package wire

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/adaptor"
	"github.com/AliHsynvv/airen-media-sub002/pkg/middleware"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, config *utils.Config, log *zap.Logger) {
	// Public
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Get("/api/auth/me", authHandler.Me)
		r.Put("/api/auth/me", authHandler.UpdateProfile)
	})
}
