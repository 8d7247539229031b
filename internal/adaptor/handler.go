package adaptor

import (
	"errors"
	"net/http"

	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/internal/usecase"
	"github.com/AliHsynvv/airen-media-sub002/pkg/pricing"
	"github.com/AliHsynvv/airen-media-sub002/pkg/slug"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Article  *ArticleHandler
	Country  *CountryHandler
	Story    *StoryHandler
	Business *BusinessHandler
	Booking  *BookingHandler
	Social   *SocialHandler
	Tag      *TagHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Article:  NewArticleHandler(service.Article, log),
		Country:  NewCountryHandler(service.Country, log),
		Story:    NewStoryHandler(service.Story, log),
		Business: NewBusinessHandler(service.Business, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Social:   NewSocialHandler(service.Social, log),
		Tag:      NewTagHandler(service.Tag, log),
	}
}

// writeServiceError translates service errors into HTTP responses. Every
// handler funnels failures through here so status codes stay consistent.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, slug.ErrInvalidTitle),
		errors.Is(err, pricing.ErrInvalidDateRange),
		errors.Is(err, pricing.ErrInvalidGuests),
		errors.Is(err, usecase.ErrSelfFollow):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, usecase.ErrSlugTaken),
		errors.Is(err, slug.ErrExhausted):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, pricing.ErrServiceNotBookable),
		errors.Is(err, pricing.ErrCapacityExceeded),
		errors.Is(err, usecase.ErrInvalidTransition):
		log.Warn(operation+" not processable", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination reads page/per_page query parameters with defaults.
func parsePagination(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}

// requestedLocale reads the ?locale= parameter; empty means the entity's
// default language wins during resolution.
func requestedLocale(r *http.Request) string {
	return r.URL.Query().Get("locale")
}
