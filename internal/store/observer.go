package store

import "sync"

// signal is the subscribe/notify mechanism shared by every store. Views
// subscribe once and re-read a snapshot whenever they are poked; no state
// travels through the callback itself.
type signal struct {
	mu   sync.Mutex
	subs []func()
}

// Subscribe registers fn to run after every state change. Callbacks run
// synchronously on the mutating goroutine, outside the store's own lock,
// so they may read snapshots freely.
func (s *signal) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *signal) emit() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
