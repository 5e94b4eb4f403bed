// Package redisstore keeps session vote state in Redis so it survives
// restarts for as long as the session lives.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const voteKeyPrefix = "jobboard:vote:"

type VoteGuard struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.VoteGuard = (*VoteGuard)(nil)

// NewVoteGuard expires vote marks after ttl, normally the session lifetime
func NewVoteGuard(client *redis.Client, ttl time.Duration) *VoteGuard {
	return &VoteGuard{client: client, ttl: ttl}
}

func voteKey(sessionID string, reviewID int64) string {
	return fmt.Sprintf("%s%s:%d", voteKeyPrefix, sessionID, reviewID)
}

// MarkVoted relies on SET NX, so concurrent votes of one session agree on
// a single winner.
func (g *VoteGuard) MarkVoted(ctx context.Context, sessionID string, reviewID int64) (bool, error) {
	ok, err := g.client.SetNX(ctx, voteKey(sessionID, reviewID), time.Now().Unix(), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis vote guard: %w", err)
	}
	return ok, nil
}

func (g *VoteGuard) HasVoted(ctx context.Context, sessionID string, reviewID int64) (bool, error) {
	n, err := g.client.Exists(ctx, voteKey(sessionID, reviewID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis vote guard: %w", err)
	}
	return n > 0, nil
}

// Unmark deletes the mark so the session can vote again
func (g *VoteGuard) Unmark(ctx context.Context, sessionID string, reviewID int64) error {
	if err := g.client.Del(ctx, voteKey(sessionID, reviewID)).Err(); err != nil {
		return fmt.Errorf("redis vote guard: %w", err)
	}
	return nil
}
