package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// Article is authored in DefaultLanguage; Translations carries sparse
// per-locale overrides stored as JSONB.
type Article struct {
	Base
	Slug            string              `db:"slug"`
	AuthorID        uuid.UUID           `db:"author_id"`
	DefaultLanguage string              `db:"default_language"`
	Title           string              `db:"title"`
	Content         string              `db:"content"`
	Excerpt         *string             `db:"excerpt"`
	CoverURL        *string             `db:"cover_url"`
	Category        *string             `db:"category"`
	Status          ArticleStatus       `db:"status"`
	PublishedAt     *time.Time          `db:"published_at"`
	ViewCount       int64               `db:"view_count"`
	Translations    locale.Translations `db:"translations"`
}

// TranslatableContent maps the row to the locale resolver's input shape.
func (a *Article) TranslatableContent() locale.Content {
	base := locale.Fields{
		"title":   a.Title,
		"content": a.Content,
		"excerpt": "",
	}
	if a.Excerpt != nil {
		base["excerpt"] = *a.Excerpt
	}
	return locale.Content{
		DefaultLanguage: a.DefaultLanguage,
		BaseFields:      base,
		Translations:    a.Translations,
	}
}
