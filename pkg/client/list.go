package client

import (
	"bytes"
	"encoding/json"
)

// results decodes list endpoints that answer either with a bare JSON array
// or with a paginated envelope carrying the array under "results".
type results[T any] struct {
	items []T
}

func (r *results[T]) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &r.items)
	}
	var env struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	r.items = env.Results
	return nil
}
