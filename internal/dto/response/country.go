package response

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

type CountryResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Slug         string  `json:"slug"`
	Locale       string  `json:"locale"`
	FallbackUsed bool    `json:"fallback_used"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	BestSeason   string  `json:"best_season,omitempty"`
	Capital      *string `json:"capital,omitempty"`
	Currency     *string `json:"currency,omitempty"`
	FlagURL      *string `json:"flag_url,omitempty"`
}

func CountryToResponse(country *entity.Country, resolved locale.Resolved) CountryResponse {
	return CountryResponse{
		ID:           country.ID.String(),
		Code:         country.Code,
		Slug:         country.Slug,
		Locale:       resolved.Locale,
		FallbackUsed: resolved.FallbackUsed,
		Name:         resolved.Fields["title"],
		Description:  resolved.Fields["description"],
		BestSeason:   resolved.Fields["best_season"],
		Capital:      country.Capital,
		Currency:     country.Currency,
		FlagURL:      country.FlagURL,
	}
}
