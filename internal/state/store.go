package state

import "sync"

// Store serialises writes to AppState and fans snapshots out to subscribers.
type Store struct {
	mu     sync.RWMutex
	state  AppState
	subs   map[uint64]chan AppState
	nextID uint64
}

// NewStore creates a store seeded with initial.
func NewStore(initial AppState) *Store {
	return &Store{
		state: initial.Clone(),
		subs:  make(map[uint64]chan AppState),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

// Read runs fn against the current state without copying it. fn must not retain pointers.
func (s *Store) Read(fn func(st *AppState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(&s.state)
}

// Update applies fn under the write lock and notifies subscribers.
func (s *Store) Update(fn func(st *AppState)) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	snapshot := s.state.Clone()
	for _, ch := range s.subs {
		publish(ch, snapshot)
	}

	return snapshot
}

// Subscribe returns a channel receiving the latest state after every update.
// Slow readers only see the newest snapshot. Call cancel to release the channel.
func (s *Store) Subscribe() (<-chan AppState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan AppState, 1)
	s.subs[id] = ch
	ch <- s.state.Clone()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// publish replaces any unread snapshot with the new one. Callers hold the write lock.
func publish(ch chan AppState, snapshot AppState) {
	select {
	case <-ch:
	default:
	}
	ch <- snapshot
}
