// Package memory is the process-local record store. Every call waits the
// configured latency first, so a cancelled request gives up early.
package memory

import (
	"context"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/document"
)

// Collection is an ordered in-memory table of records
type Collection[T any, PT domain.Identifiable[T]] struct {
	mu      sync.RWMutex
	items   []T
	latency time.Duration
}

var _ domain.Collection[domain.Job] = (*Collection[domain.Job, *domain.Job])(nil)

// NewCollection copies seed so later fixture edits do not leak in.
func NewCollection[T any, PT domain.Identifiable[T]](seed []T, latency time.Duration) (*Collection[T, PT], error) {
	items, err := document.CloneAll(seed)
	if err != nil {
		return nil, err
	}
	return &Collection[T, PT]{items: items, latency: latency}, nil
}

func (c *Collection[T, PT]) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Collection[T, PT]) indexOf(id int64) int {
	for i := range c.items {
		if PT(&c.items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T, PT]) All(ctx context.Context) ([]T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return document.CloneAll(c.items)
}

func (c *Collection[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	return document.Clone(&c.items[i])
}

// Insert stores a copy of item under the next id and writes that id back
// into item.
func (c *Collection[T, PT]) Insert(ctx context.Context, item *T) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	cp, err := document.Clone(item)
	if err != nil {
		return err
	}
	var maxID int64
	for i := range c.items {
		maxID = max(maxID, PT(&c.items[i]).GetID())
	}
	PT(cp).SetID(maxID + 1)
	c.items = append(c.items, *cp)
	PT(item).SetID(maxID + 1)
	return nil
}

func (c *Collection[T, PT]) Merge(ctx context.Context, id int64, patch map[string]any) (*T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	merged, err := document.Merge[T, PT](&c.items[i], patch)
	if err != nil {
		return nil, err
	}
	c.items[i] = *merged
	return document.Clone(merged)
}

func (c *Collection[T, PT]) Mutate(ctx context.Context, id int64, fn func(*T) error) (*T, error) {
	return c.MutateFirst(ctx, func(item *T) bool { return PT(item).GetID() == id }, fn)
}

// MutateFirst applies fn to a copy of the first matching record and commits
// the copy only when fn succeeds. The id cannot be changed by fn.
func (c *Collection[T, PT]) MutateFirst(ctx context.Context, match func(*T) bool, fn func(*T) error) (*T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if !match(&c.items[i]) {
			continue
		}
		cp, err := document.Clone(&c.items[i])
		if err != nil {
			return nil, err
		}
		if err := fn(cp); err != nil {
			return nil, err
		}
		PT(cp).SetID(PT(&c.items[i]).GetID())
		c.items[i] = *cp
		return document.Clone(cp)
	}
	return nil, domain.ErrNotFound
}

func (c *Collection[T, PT]) MutateAll(ctx context.Context, fn func(*T) error) ([]T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := document.CloneAll(c.items)
	if err != nil {
		return nil, err
	}
	for i := range next {
		id := PT(&next[i]).GetID()
		if err := fn(&next[i]); err != nil {
			return nil, err
		}
		PT(&next[i]).SetID(id)
	}
	c.items = next
	return document.CloneAll(next)
}

func (c *Collection[T, PT]) Remove(ctx context.Context, id int64) (*T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	removed := c.items[i]
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return &removed, nil
}

// Len reports the number of records without waiting
func (c *Collection[T, PT]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
