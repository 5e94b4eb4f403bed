package memory

import (
	"context"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
)

const voteSweepInterval = 5 * time.Minute

type voteKey struct {
	session string
	review  int64
}

// VoteGuard remembers votes until they are older than the session lifetime
type VoteGuard struct {
	mu        sync.Mutex
	ttl       time.Duration
	voted     map[voteKey]time.Time // expiry
	lastSweep time.Time
	now       func() time.Time
}

var _ domain.VoteGuard = (*VoteGuard)(nil)

// NewVoteGuard forgets a vote ttl after it was cast. A ttl of zero keeps
// votes for the lifetime of the process.
func NewVoteGuard(ttl time.Duration) *VoteGuard {
	return &VoteGuard{
		ttl:   ttl,
		voted: make(map[voteKey]time.Time),
		now:   time.Now,
	}
}

func (g *VoteGuard) MarkVoted(_ context.Context, sessionID string, reviewID int64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.sweep(now)
	k := voteKey{sessionID, reviewID}
	if g.live(k, now) {
		return false, nil
	}
	var expires time.Time
	if g.ttl > 0 {
		expires = now.Add(g.ttl)
	}
	g.voted[k] = expires
	return true, nil
}

func (g *VoteGuard) HasVoted(_ context.Context, sessionID string, reviewID int64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.live(voteKey{sessionID, reviewID}, g.now()), nil
}

func (g *VoteGuard) Unmark(_ context.Context, sessionID string, reviewID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.voted, voteKey{sessionID, reviewID})
	return nil
}

// Len reports the number of marks held, expired ones included until the
// next sweep.
func (g *VoteGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.voted)
}

func (g *VoteGuard) live(k voteKey, now time.Time) bool {
	expires, ok := g.voted[k]
	return ok && (expires.IsZero() || now.Before(expires))
}

// sweep drops expired marks at most once per voteSweepInterval. Callers
// hold g.mu.
func (g *VoteGuard) sweep(now time.Time) {
	if g.ttl <= 0 || now.Sub(g.lastSweep) < voteSweepInterval {
		return
	}
	g.lastSweep = now
	for k, expires := range g.voted {
		if !now.Before(expires) {
			delete(g.voted, k)
		}
	}
}
