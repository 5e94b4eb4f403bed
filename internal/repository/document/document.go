// Package document holds the JSON helpers shared by the record stores:
// deep copies of records and shallow patch merges.
package document

import (
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/goccy/go-json"
)

// IDField is the key that a patch can never change
const IDField = "id"

// Clone returns a deep copy of v
func Clone[T any](v *T) (*T, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CloneAll deep copies a slice of records. The result is never nil.
func CloneAll[T any](items []T) ([]T, error) {
	if len(items) == 0 {
		return []T{}, nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Merge overlays the top-level patch fields on a copy of record and
// returns the copy. Unknown fields are ignored, the id is kept, and a value
// of the wrong type fails with domain.ErrInvalidPatch.
func Merge[T any, PT domain.Identifiable[T]](record *T, patch map[string]any) (*T, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for k, v := range patch {
		if k == IDField {
			continue
		}
		fields[k] = v
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPatch, err)
	}
	out := new(T)
	if err := json.Unmarshal(merged, out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPatch, err)
	}
	PT(out).SetID(PT(record).GetID())
	return out, nil
}

// Decode unmarshals raw JSON into a fresh T
func Decode[T any](raw []byte) (*T, error) {
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}
