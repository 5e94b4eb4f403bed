package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotifications(t *testing.T, seed ...domain.Notification) *Collection[domain.Notification, *domain.Notification] {
	t.Helper()
	c, err := NewCollection[domain.Notification](seed, 0)
	require.NoError(t, err)
	return c
}

func TestCollectionInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Should start at 1 on an empty collection", func(t *testing.T) {
		c := newNotifications(t)
		n := &domain.Notification{Title: "first"}
		require.NoError(t, c.Insert(ctx, n))
		assert.Equal(t, int64(1), n.ID)
	})

	t.Run("Should assign max id plus one", func(t *testing.T) {
		c := newNotifications(t, domain.Notification{ID: 2}, domain.Notification{ID: 9}, domain.Notification{ID: 4})
		n := &domain.Notification{Title: "next"}
		require.NoError(t, c.Insert(ctx, n))
		assert.Equal(t, int64(10), n.ID)

		got, err := c.Get(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, "next", got.Title)
	})

	t.Run("Should not reuse the id of a removed maximum", func(t *testing.T) {
		c := newNotifications(t, domain.Notification{ID: 1}, domain.Notification{ID: 2})
		_, err := c.Remove(ctx, 1)
		require.NoError(t, err)
		n := &domain.Notification{}
		require.NoError(t, c.Insert(ctx, n))
		assert.Equal(t, int64(3), n.ID)
	})
}

func TestCollectionReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	c, err := NewCollection[domain.Candidate]([]domain.Candidate{{ID: 1, Skills: []string{"Go"}}}, 0)
	require.NoError(t, err)

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	got.Skills[0] = "COBOL"

	all, err := c.All(ctx)
	require.NoError(t, err)
	all[0].Skills = append(all[0].Skills, "Perl")

	again, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, again.Skills)
}

func TestCollectionNotFound(t *testing.T) {
	ctx := context.Background()
	c := newNotifications(t, domain.Notification{ID: 1})

	_, err := c.Get(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.Merge(ctx, 42, map[string]any{"read": true})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.Mutate(ctx, 42, func(*domain.Notification) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.Remove(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollectionMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("Merge keeps untouched fields and the id", func(t *testing.T) {
		c := newNotifications(t, domain.Notification{ID: 1, Title: "hello", Read: false})
		got, err := c.Merge(ctx, 1, map[string]any{"read": true, "id": 5})
		require.NoError(t, err)
		assert.True(t, got.Read)
		assert.Equal(t, "hello", got.Title)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("Merge with a bad value changes nothing", func(t *testing.T) {
		c := newNotifications(t, domain.Notification{ID: 1, Title: "hello"})
		_, err := c.Merge(ctx, 1, map[string]any{"title": []int{1}})
		assert.ErrorIs(t, err, domain.ErrInvalidPatch)
		got, _ := c.Get(ctx, 1)
		assert.Equal(t, "hello", got.Title)
	})

	t.Run("A failing mutation is not committed", func(t *testing.T) {
		c := newNotifications(t, domain.Notification{ID: 1, Title: "hello"})
		boom := errors.New("boom")
		_, err := c.Mutate(ctx, 1, func(n *domain.Notification) error {
			n.Title = "changed"
			return boom
		})
		assert.ErrorIs(t, err, boom)
		got, _ := c.Get(ctx, 1)
		assert.Equal(t, "hello", got.Title)
	})

	t.Run("MutateAll commits every record or none", func(t *testing.T) {
		c := newNotifications(t, domain.Notification{ID: 1}, domain.Notification{ID: 2})
		_, err := c.MutateAll(ctx, func(n *domain.Notification) error {
			n.Read = true
			if n.ID == 2 {
				return errors.New("stop")
			}
			return nil
		})
		assert.Error(t, err)
		all, _ := c.All(ctx)
		assert.False(t, all[0].Read)

		updated, err := c.MutateAll(ctx, func(n *domain.Notification) error {
			n.Read = true
			return nil
		})
		require.NoError(t, err)
		assert.Len(t, updated, 2)
		assert.True(t, updated[1].Read)
	})

	t.Run("MutateFirst stops at the first match", func(t *testing.T) {
		c := newNotifications(t,
			domain.Notification{ID: 1, Type: domain.NotificationTypeJob},
			domain.Notification{ID: 2, Type: domain.NotificationTypeAccount},
			domain.Notification{ID: 3, Type: domain.NotificationTypeAccount},
		)
		got, err := c.MutateFirst(ctx,
			func(n *domain.Notification) bool { return n.Type == domain.NotificationTypeAccount },
			func(n *domain.Notification) error { n.Read = true; return nil })
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ID)
		third, _ := c.Get(ctx, 3)
		assert.False(t, third.Read)
	})

	t.Run("Remove returns the record and preserves order", func(t *testing.T) {
		c := newNotifications(t, domain.Notification{ID: 1}, domain.Notification{ID: 2}, domain.Notification{ID: 3})
		removed, err := c.Remove(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed.ID)
		all, _ := c.All(ctx)
		assert.Equal(t, int64(1), all[0].ID)
		assert.Equal(t, int64(3), all[1].ID)
		assert.Equal(t, 2, c.Len())
	})
}

func TestCollectionLatency(t *testing.T) {
	t.Run("Should honour context cancellation while waiting", func(t *testing.T) {
		c, err := NewCollection[domain.Notification](nil, time.Minute)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err = c.All(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Should fail fast on a cancelled context without latency", func(t *testing.T) {
		c := newNotifications(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, c.Insert(ctx, &domain.Notification{}), context.Canceled)
		assert.Equal(t, 0, c.Len())
	})
}

func TestCollectionConcurrentInserts(t *testing.T) {
	c := newNotifications(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Insert(ctx, &domain.Notification{})
		}()
	}
	wg.Wait()

	all, err := c.All(ctx)
	require.NoError(t, err)
	seen := make(map[int64]bool)
	for _, n := range all {
		assert.False(t, seen[n.ID])
		seen[n.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(fixtures.MustLoad(), 0)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Jobs.Len())
	assert.Equal(t, 4, s.Companies.Len())

	empty, err := NewStore(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Notifications.Len())
}

func TestVoteGuard(t *testing.T) {
	ctx := context.Background()
	g := NewVoteGuard(0)

	first, err := g.MarkVoted(ctx, "s1", 1)
	require.NoError(t, err)
	assert.True(t, first)

	second, _ := g.MarkVoted(ctx, "s1", 1)
	assert.False(t, second)

	other, _ := g.MarkVoted(ctx, "s2", 1)
	assert.True(t, other)

	voted, _ := g.HasVoted(ctx, "s1", 1)
	assert.True(t, voted)
	voted, _ = g.HasVoted(ctx, "s1", 2)
	assert.False(t, voted)

	require.NoError(t, g.Unmark(ctx, "s1", 1))
	voted, _ = g.HasVoted(ctx, "s1", 1)
	assert.False(t, voted)
	again, _ := g.MarkVoted(ctx, "s1", 1)
	assert.True(t, again)
}

func TestVoteGuardExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	g := NewVoteGuard(time.Hour)
	g.now = func() time.Time { return now }

	for i := range 50 {
		_, err := g.MarkVoted(ctx, fmt.Sprintf("anon-%d", i), 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 50, g.Len())

	now = now.Add(59 * time.Minute)
	voted, _ := g.HasVoted(ctx, "anon-0", 1)
	assert.True(t, voted)

	now = now.Add(2 * time.Minute)
	voted, _ = g.HasVoted(ctx, "anon-0", 1)
	assert.False(t, voted, "marks lapse with the session")

	first, _ := g.MarkVoted(ctx, "fresh", 2)
	assert.True(t, first)
	assert.Equal(t, 1, g.Len(), "expired marks are swept")
}
