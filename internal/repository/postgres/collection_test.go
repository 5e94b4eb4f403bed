package postgres

import (
	"context"
	"os"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a disposable database in TEST_DATABASE_URL
func testCollection(t *testing.T) *Collection[domain.Notification, *domain.Notification] {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, Migrate(ctx, pool))

	name := "test-" + uuid.NewString()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM records WHERE collection = $1`, name)
	})
	return NewCollection[domain.Notification](pool, name)
}

func TestCollectionRoundTrip(t *testing.T) {
	c := testCollection(t)
	ctx := context.Background()

	first := &domain.Notification{Title: "hello", Type: domain.NotificationTypeJob}
	require.NoError(t, c.Insert(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := &domain.Notification{Title: "world"}
	require.NoError(t, c.Insert(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	merged, err := c.Merge(ctx, 1, map[string]any{"read": true, "id": 40})
	require.NoError(t, err)
	assert.True(t, merged.Read)
	assert.Equal(t, int64(1), merged.ID)

	_, err = c.Merge(ctx, 1, map[string]any{"read": "yes"})
	assert.ErrorIs(t, err, domain.ErrInvalidPatch)

	all, err := c.MutateAll(ctx, func(n *domain.Notification) error { n.Read = true; return nil })
	require.NoError(t, err)
	assert.Len(t, all, 2)

	removed, err := c.Remove(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "world", removed.Title)

	_, err = c.Get(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollectionSeed(t *testing.T) {
	c := testCollection(t)
	ctx := context.Background()

	seeded, err := c.Seed(ctx, []domain.Notification{{ID: 5, Title: "seed"}})
	require.NoError(t, err)
	assert.True(t, seeded)

	again, err := c.Seed(ctx, []domain.Notification{{ID: 6}})
	require.NoError(t, err)
	assert.False(t, again)

	n := &domain.Notification{}
	require.NoError(t, c.Insert(ctx, n))
	assert.Equal(t, int64(6), n.ID)
}
