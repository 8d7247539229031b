package wire

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/adaptor"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/middleware"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBusiness(r chi.Router, businessHandler *adaptor.BusinessHandler, config *utils.Config, log *zap.Logger) {
	// Public
	r.Get("/api/businesses", businessHandler.List)
	r.Get("/api/businesses/{slug}", businessHandler.GetBySlug)

	// Business accounts and admins manage listings
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleBusiness), string(entity.RoleAdmin)))

		r.Post("/api/businesses", businessHandler.Create)
		r.Put("/api/businesses/{id}", businessHandler.Update)
	})
}
