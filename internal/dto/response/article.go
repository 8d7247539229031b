package response

import (
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

type ArticleResponse struct {
	ID           string               `json:"id"`
	Slug         string               `json:"slug"`
	AuthorID     string               `json:"author_id"`
	Locale       string               `json:"locale"`
	FallbackUsed bool                 `json:"fallback_used"`
	Title        string               `json:"title"`
	Content      string               `json:"content"`
	Excerpt      string               `json:"excerpt,omitempty"`
	CoverURL     *string              `json:"cover_url,omitempty"`
	Category     *string              `json:"category,omitempty"`
	Status       entity.ArticleStatus `json:"status"`
	PublishedAt  *time.Time           `json:"published_at,omitempty"`
	ViewCount    int64                `json:"view_count"`
	CreatedAt    time.Time            `json:"created_at"`
}

// ArticleToResponse projects a resolved locale onto the article row. The
// resolved fields win over the base columns.
func ArticleToResponse(article *entity.Article, resolved locale.Resolved) ArticleResponse {
	return ArticleResponse{
		ID:           article.ID.String(),
		Slug:         article.Slug,
		AuthorID:     article.AuthorID.String(),
		Locale:       resolved.Locale,
		FallbackUsed: resolved.FallbackUsed,
		Title:        resolved.Fields["title"],
		Content:      resolved.Fields["content"],
		Excerpt:      resolved.Fields["excerpt"],
		CoverURL:     article.CoverURL,
		Category:     article.Category,
		Status:       article.Status,
		PublishedAt:  article.PublishedAt,
		ViewCount:    article.ViewCount,
		CreatedAt:    article.CreatedAt,
	}
}
