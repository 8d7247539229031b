// Package worker runs the broker consumers that fan events out into
// notification rows. Delivery is at-least-once, so an occasional duplicate
// notification is accepted rather than deduplicated.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/pkg/queue"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reconnectDelay = 5 * time.Second

type NotificationWorker struct {
	repo *repository.Repository
	url  string
	log  *zap.Logger
}

func NewNotificationWorker(repo *repository.Repository, url string, log *zap.Logger) *NotificationWorker {
	return &NotificationWorker{
		repo: repo,
		url:  url,
		log:  log.With(zap.String("component", "notification_worker")),
	}
}

// Run consumes all three event queues until ctx is cancelled, reconnecting
// after broker failures.
func (w *NotificationWorker) Run(ctx context.Context) {
	go w.consumeLoop(ctx, queue.QueueBookingCreated, w.handleBookingCreated)
	go w.consumeLoop(ctx, queue.QueueBookingStatus, w.handleBookingStatus)
	go w.consumeLoop(ctx, queue.QueueUserFollowed, w.handleUserFollowed)
}

func (w *NotificationWorker) consumeLoop(ctx context.Context, queueName string, handler func(ctx context.Context, body []byte) error) {
	for {
		err := queue.Consume(ctx, w.url, queueName, w.log, handler)
		if ctx.Err() != nil {
			return
		}
		w.log.Warn("Consumer stopped, reconnecting",
			zap.Error(err),
			zap.String("queue", queueName))

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (w *NotificationWorker) handleBookingCreated(ctx context.Context, body []byte) error {
	var event queue.BookingCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		w.log.Error("Dropping malformed booking.created event", zap.Error(err))
		return nil
	}

	ownerID, err := uuid.Parse(event.OwnerID)
	if err != nil {
		w.log.Error("Dropping booking.created event with bad owner ID", zap.Error(err))
		return nil
	}

	text := fmt.Sprintf("New booking %s for %s: %d guest(s), %.2f %s",
		event.Reference, event.BusinessName, event.GuestsCount, event.TotalPrice, event.Currency)

	return w.insert(ctx, &entity.Notification{
		UserID:   ownerID,
		ActorID:  parseOptionalID(event.UserID),
		Type:     entity.NotificationBookingCreated,
		Title:    "New booking request",
		Body:     &text,
		EntityID: parseOptionalID(event.BookingID),
	})
}

func (w *NotificationWorker) handleBookingStatus(ctx context.Context, body []byte) error {
	var event queue.BookingStatusEvent
	if err := json.Unmarshal(body, &event); err != nil {
		w.log.Error("Dropping malformed booking.status event", zap.Error(err))
		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		w.log.Error("Dropping booking.status event with bad user ID", zap.Error(err))
		return nil
	}

	text := fmt.Sprintf("Booking %s at %s is now %s", event.Reference, event.BusinessName, event.Status)

	return w.insert(ctx, &entity.Notification{
		UserID:   userID,
		Type:     entity.NotificationBookingStatus,
		Title:    "Booking " + event.Status,
		Body:     &text,
		EntityID: parseOptionalID(event.BookingID),
	})
}

func (w *NotificationWorker) handleUserFollowed(ctx context.Context, body []byte) error {
	var event queue.UserFollowedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		w.log.Error("Dropping malformed user.followed event", zap.Error(err))
		return nil
	}

	followeeID, err := uuid.Parse(event.FolloweeID)
	if err != nil {
		w.log.Error("Dropping user.followed event with bad followee ID", zap.Error(err))
		return nil
	}

	text := fmt.Sprintf("%s started following you", event.FollowerUsername)

	return w.insert(ctx, &entity.Notification{
		UserID:  followeeID,
		ActorID: parseOptionalID(event.FollowerID),
		Type:    entity.NotificationNewFollower,
		Title:   "New follower",
		Body:    &text,
	})
}

// insert stamps identity and timestamps and writes the row. A returned error
// makes the delivery requeue.
func (w *NotificationWorker) insert(ctx context.Context, notification *entity.Notification) error {
	notification.ID = uuid.New()
	notification.CreatedAt = time.Now().UTC()

	if err := w.repo.Notification.Create(ctx, notification); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}

	w.log.Info("Notification stored",
		zap.String("user_id", notification.UserID.String()),
		zap.String("type", string(notification.Type)))

	return nil
}

func parseOptionalID(raw string) *uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
