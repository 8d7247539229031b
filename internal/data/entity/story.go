package entity

import (
	"github.com/google/uuid"

	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

type StoryStatus string

const (
	StoryStatusPending  StoryStatus = "pending"
	StoryStatusApproved StoryStatus = "approved"
	StoryStatusRejected StoryStatus = "rejected"
)

// Story is a user-authored travel write-up. Stories go through moderation:
// only approved ones appear in public listings.
type Story struct {
	Base
	Slug            string              `db:"slug"`
	AuthorID        uuid.UUID           `db:"author_id"`
	DefaultLanguage string              `db:"default_language"`
	Title           string              `db:"title"`
	Content         string              `db:"content"`
	CountryCode     *string             `db:"country_code"`
	CoverURL        *string             `db:"cover_url"`
	Status          StoryStatus         `db:"status"`
	Translations    locale.Translations `db:"translations"`
}

func (s *Story) TranslatableContent() locale.Content {
	return locale.Content{
		DefaultLanguage: s.DefaultLanguage,
		BaseFields: locale.Fields{
			"title":   s.Title,
			"content": s.Content,
		},
		Translations: s.Translations,
	}
}
