package entity

import (
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

// Country is a travel guide entry for one country, keyed by ISO 3166-1
// alpha-2 code.
type Country struct {
	Base
	Code            string              `db:"code"`
	Slug            string              `db:"slug"`
	Name            string              `db:"name"`
	DefaultLanguage string              `db:"default_language"`
	Description     string              `db:"description"`
	Capital         *string             `db:"capital"`
	Currency        *string             `db:"currency"`
	BestSeason      *string             `db:"best_season"`
	FlagURL         *string             `db:"flag_url"`
	Translations    locale.Translations `db:"translations"`
}

func (c *Country) TranslatableContent() locale.Content {
	base := locale.Fields{
		"title":       c.Name,
		"description": c.Description,
		"best_season": "",
	}
	if c.BestSeason != nil {
		base["best_season"] = *c.BestSeason
	}
	return locale.Content{
		DefaultLanguage: c.DefaultLanguage,
		BaseFields:      base,
		Translations:    c.Translations,
	}
}
