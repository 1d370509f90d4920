package output

import (
	"encoding/json"
	"fmt"
)

// ToMap converts any JSON-serializable value into the generic map form the
// pipeline operates on, via a JSON round-trip.
func ToMap(value interface{}) (map[string]interface{}, error) {
	if value == nil {
		return nil, nil
	}
	if converted, ok := value.(map[string]interface{}); ok {
		return converted, nil
	}
	serialized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize value: %w", err)
	}
	var converted map[string]interface{}
	if err := json.Unmarshal(serialized, &converted); err != nil {
		return nil, fmt.Errorf("failed to convert value to map: %w", err)
	}
	return converted, nil
}

// ListPayload assembles the standard list response shape carried through
// the pipeline: items plus pagination state. The cursor is omitted when
// there is no further page.
func ListPayload(items []map[string]interface{}, hasMore bool, nextCursor string) map[string]interface{} {
	if items == nil {
		items = []map[string]interface{}{}
	}
	payload := map[string]interface{}{
		"items": items,
		"count": len(items),
	}
	if hasMore {
		payload["hasMore"] = true
		if nextCursor != "" {
			payload["nextCursor"] = nextCursor
		}
	}
	return payload
}
