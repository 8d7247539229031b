package entity

import (
	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationBookingCreated NotificationType = "booking_created"
	NotificationBookingStatus  NotificationType = "booking_status"
	NotificationNewFollower    NotificationType = "new_follower"
)

type Notification struct {
	BaseSimple
	UserID   uuid.UUID        `db:"user_id"`
	ActorID  *uuid.UUID       `db:"actor_id"`
	Type     NotificationType `db:"type"`
	Title    string           `db:"title"`
	Body     *string          `db:"body"`
	EntityID *uuid.UUID       `db:"entity_id"`
	IsRead   bool             `db:"is_read"`
}
