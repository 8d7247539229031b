package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/response"
	"github.com/AliHsynvv/airen-media-sub002/pkg/queue"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SocialService covers the follow graph, public profiles and the
// notification inbox. Follow and unfollow are idempotent.
type SocialService interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	GetProfile(ctx context.Context, username string) (*response.ProfileResponse, error)
	ListNotifications(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.NotificationResponse], error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type socialService struct {
	repo      *repository.Repository
	publisher *queue.Publisher
	log       *zap.Logger
}

func NewSocialService(repo *repository.Repository, publisher *queue.Publisher, log *zap.Logger) SocialService {
	return &socialService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

func (s *socialService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	followee, err := s.repo.User.FindByID(ctx, followeeID)
	if err != nil {
		return fmt.Errorf("find followee: %w", err)
	}
	if followee == nil {
		return ErrNotFound
	}

	follower, err := s.repo.User.FindByID(ctx, followerID)
	if err != nil {
		return fmt.Errorf("find follower: %w", err)
	}
	if follower == nil {
		return ErrNotFound
	}

	now := time.Now().UTC()
	follow := &entity.Follow{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		FollowerID: followerID,
		FolloweeID: followeeID,
	}

	err = s.repo.Follow.Create(ctx, follow)
	if err == repository.ErrDuplicate {
		// already following; treat repeat requests as success
		return nil
	}
	if err != nil {
		return fmt.Errorf("create follow: %w", err)
	}

	s.log.Info("User followed",
		zap.String("follower_id", followerID.String()),
		zap.String("followee_id", followeeID.String()))

	event := queue.UserFollowedEvent{
		FollowerID:       followerID.String(),
		FollowerUsername: follower.Username,
		FolloweeID:       followeeID.String(),
		FollowedAt:       now.Format(time.RFC3339),
	}
	if err := s.publisher.Publish(ctx, queue.QueueUserFollowed, event); err != nil {
		s.log.Warn("Failed to publish follow event", zap.Error(err))
	}

	return nil
}

func (s *socialService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if err := s.repo.Follow.Delete(ctx, followerID, followeeID); err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

func (s *socialService) GetProfile(ctx context.Context, username string) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	followers, err := s.repo.Follow.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	following, err := s.repo.Follow.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	resp := response.ProfileToResponse(user, followers, following)
	return &resp, nil
}

func (s *socialService) ListNotifications(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.NotificationResponse], error) {
	notifications, err := s.repo.Notification.ListByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	total, err := s.repo.Notification.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	items := make([]response.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, response.NotificationToResponse(n))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *socialService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.repo.Notification.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return count, nil
}

func (s *socialService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := s.repo.Notification.MarkRead(ctx, notificationID, userID)
	if err == repository.ErrNotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (s *socialService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Notification.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}
