package wire

import (
	"net/http"

	"github.com/AliHsynvv/airen-media-sub002/internal/adaptor"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/internal/usecase"
	"github.com/AliHsynvv/airen-media-sub002/pkg/cache"
	"github.com/AliHsynvv/airen-media-sub002/pkg/middleware"
	"github.com/AliHsynvv/airen-media-sub002/pkg/queue"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts every route.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	contentCache *cache.ContentCache,
	publisher *queue.Publisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, contentCache, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, config, logger)
	wireArticle(r, handler.Article, config, logger)
	wireCountry(r, handler.Country, config, logger)
	wireStory(r, handler.Story, config, logger)
	wireBusiness(r, handler.Business, config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wireSocial(r, handler.Social, config, logger)
	wireTag(r, handler.Tag, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
