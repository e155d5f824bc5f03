package platform

import "sync"

// Target is a resolved scroll destination.
type Target struct {
	ID     string
	Offset float64
}

// Resolver maps a section identifier to a scroll target.
type Resolver interface {
	Resolve(id string) (Target, bool)
}

// Scroller moves the surface to a target.
type Scroller interface {
	ScrollTo(target Target, smooth bool)
}

// Sections is a Resolver backed by the offsets the host registers while
// laying out the page.
type Sections struct {
	mu      sync.RWMutex
	offsets map[string]float64
}

func NewSections() *Sections {
	return &Sections{offsets: make(map[string]float64)}
}

// Set records where section id begins.
func (s *Sections) Set(id string, offset float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsets[id] = offset
}

// Reset forgets every section, ahead of a relayout.
func (s *Sections) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.offsets)
}

func (s *Sections) Resolve(id string) (Target, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	offset, ok := s.offsets[id]
	if !ok {
		return Target{}, false
	}
	return Target{ID: id, Offset: offset}, true
}
