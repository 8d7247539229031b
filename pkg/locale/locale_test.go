package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseContent() Content {
	return Content{
		DefaultLanguage: "en",
		BaseFields: Fields{
			"title":   "Ten days in Georgia",
			"content": "Full guide body",
			"excerpt": "Short teaser",
		},
	}
}

func TestResolve_NoTranslations(t *testing.T) {
	c := baseContent()

	got := Resolve(c, "ru")

	assert.Equal(t, "en", got.Locale)
	assert.Equal(t, c.BaseFields, got.Fields)
}

func TestResolve_RequestedLocalePresent(t *testing.T) {
	c := baseContent()
	c.Translations = Translations{
		"ru": {
			"title":   "Десять дней в Грузии",
			"content": "Полный текст",
			"excerpt": "Анонс",
		},
	}

	got := Resolve(c, "ru")

	assert.Equal(t, "ru", got.Locale)
	assert.False(t, got.FallbackUsed)
	assert.Equal(t, "Десять дней в Грузии", got.Fields["title"])
}

func TestResolve_BlankSubFieldsBecomeEmpty(t *testing.T) {
	c := baseContent()
	c.Translations = Translations{
		"ru": {
			"title":   "Десять дней в Грузии",
			"content": "   ",
			// excerpt missing entirely
		},
	}

	got := Resolve(c, "ru")

	require.Equal(t, "ru", got.Locale)
	// blank or missing sub-fields never borrow another locale's text
	assert.Equal(t, "", got.Fields["content"])
	assert.Equal(t, "", got.Fields["excerpt"])
	assert.Equal(t, "Десять дней в Грузии", got.Fields["title"])
}

func TestResolve_FallbackPrecedence(t *testing.T) {
	// blank entry for the requested locale, populated entry for the default:
	// the default entry wins over the blank one.
	c := baseContent()
	c.Translations = Translations{
		"az": {"title": "  "},
		"en": {
			"title":   "Ten days in Georgia (edited)",
			"content": "Edited body",
			"excerpt": "Edited teaser",
		},
	}

	got := Resolve(c, "az")

	assert.Equal(t, "en", got.Locale)
	assert.True(t, got.FallbackUsed)
	assert.Equal(t, "Ten days in Georgia (edited)", got.Fields["title"])
}

func TestResolve_DefaultMissingFallsThroughToBase(t *testing.T) {
	c := baseContent()
	c.Translations = Translations{
		"fr": {"title": "Dix jours en Géorgie"},
	}

	got := Resolve(c, "ru")

	assert.Equal(t, "en", got.Locale)
	assert.True(t, got.FallbackUsed)
	assert.Equal(t, c.BaseFields, got.Fields)
}

func TestResolve_Totality(t *testing.T) {
	tests := []struct {
		name      string
		content   Content
		requested string
	}{
		{"empty content", Content{}, "en"},
		{"nil base fields", Content{DefaultLanguage: "en"}, "xx-unknown"},
		{"empty requested locale", baseContent(), ""},
		{"requested equals default", baseContent(), "en"},
		{
			"translations present but all blank",
			Content{
				DefaultLanguage: "en",
				BaseFields:      Fields{"title": "t"},
				Translations:    Translations{"en": {}, "ru": {"title": ""}},
			},
			"ru",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.content, tt.requested)

			require.NotNil(t, got.Fields)
			// every declared field is populated with some string
			for name := range tt.content.BaseFields {
				_, ok := got.Fields[name]
				assert.True(t, ok, "field %s missing from resolved set", name)
			}
		})
	}
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	c := baseContent()
	c.Translations = Translations{"ru": {"title": "Заголовок"}}

	got := Resolve(c, "ru")
	got.Fields["title"] = "changed"

	assert.Equal(t, "Заголовок", c.Translations["ru"]["title"])
	assert.Equal(t, "Ten days in Georgia", c.BaseFields["title"])
}
