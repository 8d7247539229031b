package repository

import (
	"encoding/json"
	"fmt"

	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
)

// marshalTranslations encodes the sparse locale map for a JSONB column. A
// nil map is stored as SQL NULL rather than "null".
func marshalTranslations(t locale.Translations) (any, error) {
	if t == nil {
		return nil, nil
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal translations: %w", err)
	}
	return raw, nil
}

// scanTranslations decodes a JSONB column into the locale map. NULL yields a
// nil map, which the resolver treats as "no translations".
func scanTranslations(raw []byte, dest *locale.Translations) error {
	if len(raw) == 0 {
		*dest = nil
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal translations: %w", err)
	}
	return nil
}
