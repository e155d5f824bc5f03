package observe

import "sync"

// Topic fans a stream of events out to subscribers. Unlike Store it keeps
// no value: a late subscriber only sees events published after it joined.
type Topic[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(T)
	order  []int
}

func NewTopic[T any]() *Topic[T] {
	return &Topic[T]{subs: make(map[int]func(T))}
}

// Publish delivers ev to all current subscribers. The subscriber list is
// snapshotted first, so handlers may unsubscribe while being called.
func (t *Topic[T]) Publish(ev T) {
	t.mu.Lock()
	handlers := make([]func(T), 0, len(t.order))
	for _, id := range t.order {
		handlers = append(handlers, t.subs[id])
	}
	t.mu.Unlock()
	for _, h := range handlers {
		h(ev)
	}
}

// Subscribe registers fn. The returned function detaches it exactly once.
func (t *Topic[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.subs[id] = fn
	t.order = append(t.order, id)
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			delete(t.subs, id)
			for i, existing := range t.order {
				if existing == id {
					t.order = append(t.order[:i], t.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Len reports the number of subscribers.
func (t *Topic[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
