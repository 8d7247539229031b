package usecase

import (
	"math/rand"
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/pkg/cache"
	"github.com/AliHsynvv/airen-media-sub002/pkg/queue"
	"github.com/AliHsynvv/airen-media-sub002/pkg/slug"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"go.uber.org/zap"
)

// Service groups every feature service behind one constructor for wiring.
type Service struct {
	Auth     AuthService
	Article  ArticleService
	Country  CountryService
	Story    StoryService
	Business BusinessService
	Booking  BookingService
	Social   SocialService
	Tag      TagService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	contentCache *cache.ContentCache,
	publisher *queue.Publisher,
	log *zap.Logger,
) *Service {
	slugs := slug.NewAssigner(rand.New(rand.NewSource(time.Now().UnixNano())))

	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Article:  NewArticleService(repo, slugs, contentCache, log),
		Country:  NewCountryService(repo, slugs, contentCache, log),
		Story:    NewStoryService(repo, slugs, contentCache, log),
		Business: NewBusinessService(repo, slugs, log),
		Booking:  NewBookingService(repo, publisher, log),
		Social:   NewSocialService(repo, publisher, log),
		Tag:      NewTagService(repo, log),
	}
}
