package request

import (
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

type CreateCountryRequest struct {
	Code            string              `json:"code" validate:"required,len=2,alpha"`
	Name            string              `json:"name" validate:"required,max=100"`
	DefaultLanguage string              `json:"default_language" validate:"required,min=2,max=10"`
	Description     string              `json:"description" validate:"required"`
	Capital         *string             `json:"capital,omitempty" validate:"omitempty,max=100"`
	Currency        *string             `json:"currency,omitempty" validate:"omitempty,len=3"`
	BestSeason      *string             `json:"best_season,omitempty" validate:"omitempty,max=100"`
	FlagURL         *string             `json:"flag_url,omitempty" validate:"omitempty,url"`
	Translations    locale.Translations `json:"translations,omitempty"`
}

type UpdateCountryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	Capital     *string `json:"capital,omitempty" validate:"omitempty,max=100"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,len=3"`
	BestSeason  *string `json:"best_season,omitempty" validate:"omitempty,max=100"`
	FlagURL     *string `json:"flag_url,omitempty" validate:"omitempty,url"`
}
