package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// flexID decodes a card id that may be stored as a JSON string or number.
// Dataset files use strings, raw API dumps use numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", b)
	}
	*f = flexID(n.String())
	return nil
}

type idHolder struct {
	ID flexID `json:"id"`
}

// CardIDs extracts the card ids from a JSON file holding either a list of
// cards or a single card object.
func CardIDs(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var list []idHolder
	if err := json.Unmarshal(b, &list); err == nil {
		ids := make([]string, 0, len(list))
		for _, h := range list {
			if h.ID != "" {
				ids = append(ids, string(h.ID))
			}
		}
		return ids, nil
	}

	var single idHolder
	if err := json.Unmarshal(b, &single); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if single.ID == "" {
		return nil, nil
	}
	return []string{string(single.ID)}, nil
}
