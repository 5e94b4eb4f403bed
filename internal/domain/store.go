package domain

import "context"

// Identifiable is satisfied by pointers to stored records.
type Identifiable[T any] interface {
	*T
	GetID() int64
	SetID(id int64)
}

// Check vets a record after a patch was merged into it and may normalize
// it. An error keeps the stored record unchanged.
type Check[T any] func(*T) error

// Collection is the record store contract shared by every entity.
// Reads return copies; a mutation either commits fully or not at all.
type Collection[T any] interface {
	All(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	// Insert assigns max(existing ids)+1, or 1 on an empty collection.
	Insert(ctx context.Context, item *T) error
	// Merge shallow-merges patch fields into the record. The id is immutable.
	Merge(ctx context.Context, id int64, patch map[string]any) (*T, error)
	Mutate(ctx context.Context, id int64, fn func(*T) error) (*T, error)
	MutateFirst(ctx context.Context, match func(*T) bool, fn func(*T) error) (*T, error)
	MutateAll(ctx context.Context, fn func(*T) error) ([]T, error)
	Remove(ctx context.Context, id int64) (*T, error)
}
