// Package nav derives navigation bar state from the page scroll offset and
// owns the menu toggle.
package nav

import (
	"sync"

	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/observe"
	"github.com/akyairhashvil/carebook/internal/platform"
)

// State is what the navigation bar renders from.
type State struct {
	// Scrolled is true once the page is scrolled past the threshold.
	Scrolled bool
	MenuOpen bool
}

// ScrollSpy tracks the scroll offset and the menu.
type ScrollSpy struct {
	threshold float64
	resolver  platform.Resolver
	scroller  platform.Scroller
	store     *observe.Store[State]

	mu     sync.Mutex
	detach func()
	closed bool
}

type Option func(*ScrollSpy)

// WithThreshold overrides the compaction threshold.
func WithThreshold(offset float64) Option {
	return func(s *ScrollSpy) { s.threshold = offset }
}

func New(resolver platform.Resolver, scroller platform.Scroller, opts ...Option) *ScrollSpy {
	s := &ScrollSpy{
		threshold: config.ScrollThreshold,
		resolver:  resolver,
		scroller:  scroller,
		store:     observe.NewStore(State{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ScrollSpy) Current() State { return s.store.Current() }

func (s *ScrollSpy) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}

// Attach starts following src. A previous source is detached first.
func (s *ScrollSpy) Attach(src platform.ScrollSource) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	prev := s.detach
	s.detach = nil
	s.mu.Unlock()
	if prev != nil {
		prev()
	}

	unsub := src.SubscribeScroll(s.OnScroll)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.detach != nil {
		unsub()
		return
	}
	s.detach = unsub
}

// OnScroll recomputes Scrolled from offset. Repeating an offset changes nothing.
func (s *ScrollSpy) OnScroll(offset float64) {
	defer s.store.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	st := s.store.Current()
	scrolled := offset > s.threshold
	if st.Scrolled == scrolled {
		return
	}
	st.Scrolled = scrolled
	s.store.Stage(st)
}

// ToggleMenu flips the menu open or closed.
func (s *ScrollSpy) ToggleMenu() {
	defer s.store.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	st := s.store.Current()
	st.MenuOpen = !st.MenuOpen
	s.store.Stage(st)
}

// CloseMenu closes the menu if it is open.
func (s *ScrollSpy) CloseMenu() {
	defer s.store.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeMenuLocked()
}

func (s *ScrollSpy) closeMenuLocked() {
	if s.closed {
		return
	}
	st := s.store.Current()
	if !st.MenuOpen {
		return
	}
	st.MenuOpen = false
	s.store.Stage(st)
}

// Navigate closes the menu and smoothly scrolls to section id. It reports
// whether id resolved; an unknown id scrolls nowhere and is not an error.
func (s *ScrollSpy) Navigate(id string) bool {
	s.mu.Lock()
	s.closeMenuLocked()
	closed := s.closed
	s.mu.Unlock()
	s.store.Flush()
	if closed || s.resolver == nil {
		return false
	}

	target, ok := s.resolver.Resolve(id)
	if !ok {
		return false
	}
	if s.scroller != nil {
		s.scroller.ScrollTo(target, true)
	}
	return true
}

// Close detaches from the scroll source. Safe to call more than once.
func (s *ScrollSpy) Close() {
	s.mu.Lock()
	s.closed = true
	detach := s.detach
	s.detach = nil
	s.mu.Unlock()
	if detach != nil {
		detach()
	}
}
