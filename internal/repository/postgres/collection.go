package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/document"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Collection stores records of one kind as JSONB documents in the shared
// records table. Id allocation and multi-row updates take a transaction
// scoped advisory lock on the collection name.
type Collection[T any, PT domain.Identifiable[T]] struct {
	db   *pgxpool.Pool
	name string
}

var _ domain.Collection[domain.Job] = (*Collection[domain.Job, *domain.Job])(nil)

func NewCollection[T any, PT domain.Identifiable[T]](db *pgxpool.Pool, name string) *Collection[T, PT] {
	return &Collection[T, PT]{db: db, name: name}
}

func (c *Collection[T, PT]) All(ctx context.Context) ([]T, error) {
	rows, err := c.db.Query(ctx, `SELECT body FROM records WHERE collection = $1 ORDER BY id`, c.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		item, err := document.Decode[T](body)
		if err != nil {
			return nil, fmt.Errorf("%s: decode record: %w", c.name, err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (c *Collection[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	var body []byte
	err := c.db.QueryRow(ctx, `SELECT body FROM records WHERE collection = $1 AND id = $2`, c.name, id).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return document.Decode[T](body)
}

func (c *Collection[T, PT]) Insert(ctx context.Context, item *T) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := c.lock(ctx, tx); err != nil {
		return err
	}

	var maxID int64
	err = tx.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM records WHERE collection = $1`, c.name).Scan(&maxID)
	if err != nil {
		return err
	}

	cp, err := document.Clone(item)
	if err != nil {
		return err
	}
	PT(cp).SetID(maxID + 1)
	if err := c.insert(ctx, tx, cp); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	PT(item).SetID(maxID + 1)
	return nil
}

func (c *Collection[T, PT]) Merge(ctx context.Context, id int64, patch map[string]any) (*T, error) {
	return c.Mutate(ctx, id, func(item *T) error {
		merged, err := document.Merge[T, PT](item, patch)
		if err != nil {
			return err
		}
		*item = *merged
		return nil
	})
}

func (c *Collection[T, PT]) Mutate(ctx context.Context, id int64, fn func(*T) error) (*T, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var body []byte
	err = tx.QueryRow(ctx,
		`SELECT body FROM records WHERE collection = $1 AND id = $2 FOR UPDATE`, c.name, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	item, err := document.Decode[T](body)
	if err != nil {
		return nil, err
	}
	if err := fn(item); err != nil {
		return nil, err
	}
	PT(item).SetID(id)
	if err := c.update(ctx, tx, item); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *Collection[T, PT]) MutateFirst(ctx context.Context, match func(*T) bool, fn func(*T) error) (*T, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	items, err := c.lockAll(ctx, tx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if !match(&items[i]) {
			continue
		}
		id := PT(&items[i]).GetID()
		if err := fn(&items[i]); err != nil {
			return nil, err
		}
		PT(&items[i]).SetID(id)
		if err := c.update(ctx, tx, &items[i]); err != nil {
			return nil, err
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, domain.ErrNotFound
}

func (c *Collection[T, PT]) MutateAll(ctx context.Context, fn func(*T) error) ([]T, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	items, err := c.lockAll(ctx, tx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		id := PT(&items[i]).GetID()
		if err := fn(&items[i]); err != nil {
			return nil, err
		}
		PT(&items[i]).SetID(id)
		if err := c.update(ctx, tx, &items[i]); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Collection[T, PT]) Remove(ctx context.Context, id int64) (*T, error) {
	var body []byte
	err := c.db.QueryRow(ctx,
		`DELETE FROM records WHERE collection = $1 AND id = $2 RETURNING body`, c.name, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return document.Decode[T](body)
}

// Seed inserts items with their own ids when the collection is empty.
// It reports whether anything was written.
func (c *Collection[T, PT]) Seed(ctx context.Context, items []T) (bool, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	if err := c.lock(ctx, tx); err != nil {
		return false, err
	}
	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM records WHERE collection = $1)`, c.name).Scan(&exists)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	for i := range items {
		if err := c.insert(ctx, tx, &items[i]); err != nil {
			return false, err
		}
	}
	return true, tx.Commit(ctx)
}

func (c *Collection[T, PT]) lock(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, c.name)
	return err
}

// lockAll loads the whole collection under the collection lock
func (c *Collection[T, PT]) lockAll(ctx context.Context, tx pgx.Tx) ([]T, error) {
	if err := c.lock(ctx, tx); err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `SELECT body FROM records WHERE collection = $1 ORDER BY id FOR UPDATE`, c.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		item, err := document.Decode[T](body)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// JSON is sent as text so the statement also works with the simple protocol
func (c *Collection[T, PT]) insert(ctx context.Context, tx pgx.Tx, item *T) error {
	body, err := document.Encode(item)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO records (collection, id, body) VALUES ($1, $2, $3::jsonb)`,
		c.name, PT(item).GetID(), string(body))
	return err
}

func (c *Collection[T, PT]) update(ctx context.Context, tx pgx.Tx, item *T) error {
	body, err := document.Encode(item)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE records SET body = $3::jsonb, updated_at = NOW() WHERE collection = $1 AND id = $2`,
		c.name, PT(item).GetID(), string(body))
	return err
}
