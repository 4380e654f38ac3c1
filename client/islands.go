package client

import (
	"encoding/json"

	"shiftflow/models"
)

// Island decodes the named bootstrapped blob from a page's islands.
// Missing or malformed data yields the fallback, never an error.
func Island[T any](islands models.Islands, id string, fallback T) T {
	raw, ok := islands[id]
	if !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}
