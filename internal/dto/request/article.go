package request

import (
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

type CreateArticleRequest struct {
	Title           string              `json:"title" validate:"required,max=200"`
	Content         string              `json:"content" validate:"required"`
	DefaultLanguage string              `json:"default_language" validate:"required,min=2,max=10"`
	Excerpt         *string             `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	CoverURL        *string             `json:"cover_url,omitempty" validate:"omitempty,url"`
	Category        *string             `json:"category,omitempty" validate:"omitempty,max=50"`
	Translations    locale.Translations `json:"translations,omitempty"`
}

type UpdateArticleRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content  *string `json:"content,omitempty"`
	Excerpt  *string `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	CoverURL *string `json:"cover_url,omitempty" validate:"omitempty,url"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=50"`
}

// UpsertTranslationRequest replaces a single locale's overrides. It is
// shared by articles, countries and stories.
type UpsertTranslationRequest struct {
	Locale string        `json:"locale" validate:"required,min=2,max=10"`
	Fields locale.Fields `json:"fields" validate:"required"`
}
