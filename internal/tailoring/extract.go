package tailoring

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ExtractItemArray turns a free-text model reply that is supposed to
// be a JSON array into an item list, tolerating common deviations:
// markdown code fences around the JSON, and the array being wrapped
// in an object under some key. Bare string elements are accepted as
// title-only items. Anything else returns the fallback unchanged.
// This function never fails.
func ExtractItemArray(text string, fallback []types.Item) []types.Item {
	cleaned := strings.TrimSpace(llm.CleanJSONBlock(text))
	if cleaned == "" {
		return fallback
	}

	switch cleaned[0] {
	case '[':
		var items []types.Item
		if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
			return fallback
		}
		return items
	case '{':
		// Some models wrap the array under a named key despite
		// instructions; take the first array-valued property in
		// document order.
		dec := json.NewDecoder(strings.NewReader(cleaned))
		if _, err := dec.Token(); err != nil {
			return fallback
		}
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return fallback
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return fallback
			}
			value := bytes.TrimSpace(raw)
			if len(value) > 0 && value[0] == '[' {
				var items []types.Item
				if err := json.Unmarshal(value, &items); err != nil {
					return fallback
				}
				return items
			}
		}
		return fallback
	default:
		return fallback
	}
}
