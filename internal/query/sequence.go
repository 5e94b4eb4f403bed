package query

import "sync"

// Sequencer hands out increasing tokens per key so that a response can be
// dropped when a newer request for the same key was issued meanwhile.
type Sequencer struct {
	mu     sync.Mutex
	next   uint64
	latest map[string]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[string]uint64)}
}

// Issue registers a new request for key and returns its token
func (s *Sequencer) Issue(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.latest[key] = s.next
	return s.next
}

// Complete reports whether token is still the newest one for key. The key
// is released once its newest request completes.
func (s *Sequencer) Complete(key string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest[key] != token {
		return false
	}
	delete(s.latest, key)
	return true
}

// InFlight returns the number of keys with an outstanding request
func (s *Sequencer) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.latest)
}
