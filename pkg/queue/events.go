// Package queue defines the domain events exchanged over the message broker
// and the publisher/consumer plumbing around them. Event fan-out (writing
// notification rows) happens off the request path in internal/worker.
package queue

const (
	QueueBookingCreated = "booking.created"
	QueueBookingStatus  = "booking.status"
	QueueUserFollowed   = "user.followed"
)

// BookingCreatedEvent is published when a booking is inserted in pending
// state. It carries enough context for the notification worker to address
// the listing owner without re-querying the booking.
type BookingCreatedEvent struct {
	BookingID    string  `json:"booking_id"`
	Reference    string  `json:"reference"`
	BusinessID   string  `json:"business_id"`
	BusinessName string  `json:"business_name"`
	OwnerID      string  `json:"owner_id"`
	UserID       string  `json:"user_id"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	GuestsCount  int     `json:"guests_count"`
	TotalPrice   float64 `json:"total_price"`
	Currency     string  `json:"currency"`
	CreatedAt    string  `json:"created_at"`
}

// BookingStatusEvent is published on confirm/cancel so the requester can be
// notified of the outcome.
type BookingStatusEvent struct {
	BookingID    string `json:"booking_id"`
	Reference    string `json:"reference"`
	BusinessName string `json:"business_name"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
	ChangedAt    string `json:"changed_at"`
}

// UserFollowedEvent is published when a follow edge is created.
type UserFollowedEvent struct {
	FollowerID       string `json:"follower_id"`
	FollowerUsername string `json:"follower_username"`
	FolloweeID       string `json:"followee_id"`
	FollowedAt       string `json:"followed_at"`
}
