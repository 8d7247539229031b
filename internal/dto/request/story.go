package request

import (
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

type CreateStoryRequest struct {
	Title           string              `json:"title" validate:"required,max=200"`
	Content         string              `json:"content" validate:"required"`
	DefaultLanguage string              `json:"default_language" validate:"required,min=2,max=10"`
	CountryCode     *string             `json:"country_code,omitempty" validate:"omitempty,len=2,alpha"`
	CoverURL        *string             `json:"cover_url,omitempty" validate:"omitempty,url"`
	Translations    locale.Translations `json:"translations,omitempty"`
}

type UpdateStoryRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content     *string `json:"content,omitempty"`
	CountryCode *string `json:"country_code,omitempty" validate:"omitempty,len=2,alpha"`
	CoverURL    *string `json:"cover_url,omitempty" validate:"omitempty,url"`
}

type ModerateStoryRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
