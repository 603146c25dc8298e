package rose

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCodecJSON is returned when a JSON document does not describe a tree.
var ErrCodecJSON = errors.New("malformed tree JSON")

// MarshalJSON encodes t as {"value": ..., "forest": [...]}, omitting the
// forest for leaves. Values are encoded with [encoding/json].
func (t Tree[A]) MarshalJSON() ([]byte, error) {
	if t.IsLeaf() {
		return json.Marshal(struct {
			Value A `json:"value"`
		}{t.shape.value})
	}
	return json.Marshal(struct {
		Value  A         `json:"value"`
		Forest []Tree[A] `json:"forest"`
	}{t.shape.value, t.shape.forest})
}

// UnmarshalJSON decodes the form produced by [Tree.MarshalJSON]. A missing
// or empty forest decodes to a leaf.
func (t *Tree[A]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value  json.RawMessage `json:"value"`
		Forest []Tree[A]       `json:"forest"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrCodecJSON, err)
	}
	if raw.Value == nil {
		return fmt.Errorf("%w: missing value", ErrCodecJSON)
	}
	var value A
	if err := json.Unmarshal(raw.Value, &value); err != nil {
		return fmt.Errorf("%w: %w", ErrCodecJSON, err)
	}
	*t = TreeOf(value, raw.Forest...)
	return nil
}
