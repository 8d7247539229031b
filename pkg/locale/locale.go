// Package locale resolves the best available translated text fields for a
// content item. It is a pure, total function over its inputs: it never
// returns an error and every declared field comes back populated with some
// string, possibly empty.
package locale

import "strings"

// PrimaryField is the field used to judge whether a translation entry has
// content at all. Entries whose primary field is blank are treated as absent.
const PrimaryField = "title"

// Fields maps field name to text for a single locale.
type Fields map[string]string

// Translations maps locale to its per-field overrides. Entries are sparse: a
// locale may be present with blank fields, which counts the same as absent.
type Translations map[string]Fields

// Content is a translatable content item. BaseFields are authored in
// DefaultLanguage and act as the final fallback.
type Content struct {
	DefaultLanguage string
	BaseFields      Fields
	Translations    Translations
}

// Resolved carries the chosen field set plus which locale actually supplied
// it, so callers can set Content-Language or surface fallback info.
type Resolved struct {
	Locale       string
	Fields       Fields
	FallbackUsed bool
}

// Resolve picks the best field set for the requested locale:
//
//  1. no translations at all -> base fields
//  2. translations[requested] with a non-blank primary field -> that entry
//  3. translations[default] with a non-blank primary field -> that entry
//  4. base fields
//
// Blank sub-fields of a chosen entry become empty strings, never another
// locale's value. The declared field set is the key set of BaseFields.
func Resolve(c Content, requested string) Resolved {
	if len(c.Translations) == 0 {
		return Resolved{Locale: c.DefaultLanguage, Fields: copyFields(c.BaseFields)}
	}

	if entry, ok := c.Translations[requested]; ok && hasContent(entry) {
		return Resolved{Locale: requested, Fields: project(c.BaseFields, entry)}
	}

	if requested != c.DefaultLanguage {
		if entry, ok := c.Translations[c.DefaultLanguage]; ok && hasContent(entry) {
			return Resolved{Locale: c.DefaultLanguage, Fields: project(c.BaseFields, entry), FallbackUsed: true}
		}
	}

	return Resolved{Locale: c.DefaultLanguage, Fields: copyFields(c.BaseFields), FallbackUsed: requested != c.DefaultLanguage}
}

func hasContent(entry Fields) bool {
	return strings.TrimSpace(entry[PrimaryField]) != ""
}

// project builds the declared field set from an entry, substituting blank
// sub-fields with empty strings.
func project(declared, entry Fields) Fields {
	out := make(Fields, len(declared))
	for name := range declared {
		if v, ok := entry[name]; ok && strings.TrimSpace(v) != "" {
			out[name] = v
		} else {
			out[name] = ""
		}
	}
	return out
}

func copyFields(src Fields) Fields {
	out := make(Fields, len(src))
	for name, v := range src {
		out[name] = v
	}
	return out
}
