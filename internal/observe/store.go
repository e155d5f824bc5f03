// Package observe holds the state container shared by the interaction
// components: a current value plus synchronous change notification.
package observe

import "sync"

// Store keeps the latest value of T and notifies subscribers on every Set.
//
// No lock is held while subscribers run, so a subscriber may read Current
// or call back into the owning component. Notifications are delivered in
// Set order by one goroutine at a time; a Set made while another goroutine
// (or an enclosing subscriber) is delivering is queued and delivered by
// that goroutine, after the current notification finishes.
type Store[T any] struct {
	mu         sync.Mutex
	value      T
	nextID     int
	subs       map[int]func(T)
	order      []int
	pending    []T
	delivering bool
}

// NewStore creates a store holding initial.
func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{
		value: initial,
		subs:  make(map[int]func(T)),
	}
}

// Current returns the latest value.
func (s *Store[T]) Current() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and notifies every subscriber.
func (s *Store[T]) Set(v T) {
	s.Stage(v)
	s.Flush()
}

// Stage replaces the value and queues its notification without running any
// subscriber. Components stage while holding their own lock, which fixes the
// order of values, and Flush once the lock is released.
func (s *Store[T]) Stage(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.pending = append(s.pending, v)
}

// Flush delivers queued notifications unless a delivery is already under way.
func (s *Store[T]) Flush() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	for len(s.pending) > 0 {
		v := s.pending[0]
		s.pending = s.pending[1:]
		handlers := make([]func(T), 0, len(s.order))
		for _, id := range s.order {
			handlers = append(handlers, s.subs[id])
		}
		s.mu.Unlock()
		for _, h := range handlers {
			h(v)
		}
		s.mu.Lock()
	}
	s.pending = nil
	s.delivering = false
	s.mu.Unlock()
}

// Subscribe registers fn and returns a function that removes it. The
// returned function is safe to call more than once.
func (s *Store[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, existing := range s.order {
				if existing == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Subscribers reports the number of registered subscribers.
func (s *Store[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
