package wire

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/adaptor"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/middleware"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCountry(r chi.Router, countryHandler *adaptor.CountryHandler, config *utils.Config, log *zap.Logger) {
	// Public
	r.Get("/api/countries", countryHandler.List)
	r.Get("/api/countries/{slug}", countryHandler.GetBySlug)

	// Admin: the country guide is curated content
	r.Route("/api/admin/countries", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		r.Post("/", countryHandler.Create)
		r.Put("/{code}", countryHandler.Update)
		r.Put("/{code}/translations", countryHandler.UpsertTranslation)
	})
}
