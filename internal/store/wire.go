package store

import (
	"encoding/json"
	"fmt"

	"atlas/internal/model"
)

// ErrInvalidShape marks a structurally wrong import document (valid JSON that
// is not an array of categories). Parse errors are surfaced verbatim instead.
var ErrInvalidShape = fmt.Errorf("invalid format: expected an array of categories")

// DecodeTree parses a serialized tree. The wire shape is the original app's
// storage layout: a top-level JSON array of category objects. Anything else
// is rejected; malformed JSON keeps the parser's error so it can be shown to
// the user.
func DecodeTree(b []byte) ([]model.Category, error) {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	if _, ok := raw.([]any); !ok {
		return nil, ErrInvalidShape
	}
	var cats []model.Category
	if err := json.Unmarshal(b, &cats); err != nil {
		return nil, err
	}
	normalize(cats)
	return cats, nil
}

// EncodeTree serializes the full tree as indented JSON, byte-for-byte
// reproducible from the in-memory state.
func EncodeTree(cats []model.Category) ([]byte, error) {
	return json.MarshalIndent(cats, "", "  ")
}

// normalize is the single read-time cleanup pass: clamp stored confidence
// into range and suppress duplicate tags. Missing optionals stay missing;
// defaults are applied by consumers (RoleOrDefault, ConfidenceOrDefault).
func normalize(cats []model.Category) {
	for ci := range cats {
		for ti := range cats[ci].Topics {
			t := &cats[ci].Topics[ti]
			if t.Confidence != nil {
				v := model.Clamp(*t.Confidence, 0, 100)
				t.Confidence = &v
			}
			if len(t.Tags) > 0 {
				t.Tags = model.Uniq(t.Tags)
			}
		}
	}
}
