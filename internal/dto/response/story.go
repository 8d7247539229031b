package response

import (
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

type StoryResponse struct {
	ID           string             `json:"id"`
	Slug         string             `json:"slug"`
	AuthorID     string             `json:"author_id"`
	Locale       string             `json:"locale"`
	FallbackUsed bool               `json:"fallback_used"`
	Title        string             `json:"title"`
	Content      string             `json:"content"`
	CountryCode  *string            `json:"country_code,omitempty"`
	CoverURL     *string            `json:"cover_url,omitempty"`
	Status       entity.StoryStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
}

func StoryToResponse(story *entity.Story, resolved locale.Resolved) StoryResponse {
	return StoryResponse{
		ID:           story.ID.String(),
		Slug:         story.Slug,
		AuthorID:     story.AuthorID.String(),
		Locale:       resolved.Locale,
		FallbackUsed: resolved.FallbackUsed,
		Title:        resolved.Fields["title"],
		Content:      resolved.Fields["content"],
		CountryCode:  story.CountryCode,
		CoverURL:     story.CoverURL,
		Status:       story.Status,
		CreatedAt:    story.CreatedAt,
	}
}
