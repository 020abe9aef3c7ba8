package normalize

import (
	"encoding/json"
	"errors"
)

var errNotObject = errors.New("decoded value is not an object")

// ParseArray strictly decodes a candidate region into a generic array.
// Elements keep whatever JSON type they had; FieldNormalizer decides what to
// do with non-objects.
func ParseArray(candidate string) ([]any, error) {
	var items []any
	if err := json.Unmarshal([]byte(candidate), &items); err != nil {
		return nil, &ErrParse{Text: candidate, Err: err}
	}
	return items, nil
}

// ParseObject strictly decodes cleaned single-mode text into a map.
func ParseObject(cleaned string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, &ErrParse{Text: cleaned, Err: err}
	}
	// "null" decodes without error into a nil map.
	if obj == nil {
		return nil, &ErrParse{Text: cleaned, Err: errNotObject}
	}
	return obj, nil
}
