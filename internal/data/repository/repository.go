package repository

import (
	"github.com/AliHsynvv/airen-media-sub002/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Article      ArticleRepository
	Country      CountryRepository
	Story        StoryRepository
	Business     BusinessRepository
	Booking      BookingRepository
	Follow       FollowRepository
	Notification NotificationRepository
	Tag          TagRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Article:      NewArticleRepository(db, log),
		Country:      NewCountryRepository(db, log),
		Story:        NewStoryRepository(db, log),
		Business:     NewBusinessRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Follow:       NewFollowRepository(db, log),
		Notification: NewNotificationRepository(db, log),
		Tag:          NewTagRepository(db, log),
	}
}
