package response

import (
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	ActorID   *string                 `json:"actor_id,omitempty"`
	Type      entity.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Body      *string                 `json:"body,omitempty"`
	EntityID  *string                 `json:"entity_id,omitempty"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}

	if n.ActorID != nil {
		actor := n.ActorID.String()
		resp.ActorID = &actor
	}
	if n.EntityID != nil {
		ent := n.EntityID.String()
		resp.EntityID = &ent
	}

	return resp
}
