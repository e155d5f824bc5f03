// Package parallax records the pointer position inside a container and turns
// it into decorative layer offsets.
package parallax

import (
	"sync"

	"github.com/akyairhashvil/carebook/internal/observe"
	"github.com/akyairhashvil/carebook/internal/platform"
	"github.com/akyairhashvil/carebook/internal/util"
)

// Rect is a container's bounding box in surface coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point lies inside the box.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// PointerState is the latest pointer sample relative to the container's
// top-left corner.
type PointerState struct {
	X, Y float64
}

// Field tracks the pointer over one container. Only the latest sample is kept.
type Field struct {
	store *observe.Store[PointerState]

	mu     sync.Mutex
	bounds Rect
	detach func()
	closed bool
}

func NewField(bounds Rect) *Field {
	return &Field{
		bounds: bounds,
		store:  observe.NewStore(PointerState{}),
	}
}

// Position returns the latest stored sample.
func (f *Field) Position() PointerState { return f.store.Current() }

func (f *Field) Subscribe(fn func(PointerState)) (unsubscribe func()) {
	return f.store.Subscribe(fn)
}

func (f *Field) Bounds() Rect {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bounds
}

// SetBounds moves or resizes the container. Stored coordinates are not
// rescaled; the next sample replaces them.
func (f *Field) SetBounds(r Rect) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bounds = r
}

// OnResize changes the container's size, keeping its origin.
func (f *Field) OnResize(width, height float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bounds.Width, f.bounds.Height = width, height
}

// OnPointer records a sample given in surface coordinates. Samples outside
// the container are ignored. It reports whether the sample was stored.
func (f *Field) OnPointer(x, y float64) bool {
	defer f.store.Flush()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || !f.bounds.Contains(x, y) {
		return false
	}
	f.store.Stage(PointerState{X: x - f.bounds.X, Y: y - f.bounds.Y})
	return true
}

// Offset scales the stored position, clamped to the container, by coefficient.
func (f *Field) Offset(coefficient float64) (dx, dy float64) {
	f.mu.Lock()
	b := f.bounds
	f.mu.Unlock()
	p := f.store.Current()
	return util.ClampFloat(p.X, 0, b.Width) * coefficient, util.ClampFloat(p.Y, 0, b.Height) * coefficient
}

// Attach follows src until Close. A previous source is detached first.
func (f *Field) Attach(src platform.PointerSource) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	prev := f.detach
	f.detach = nil
	f.mu.Unlock()
	if prev != nil {
		prev()
	}

	unsub := src.SubscribePointer(func(ev platform.PointerEvent) { f.OnPointer(ev.X, ev.Y) })
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.detach != nil {
		unsub()
		return
	}
	f.detach = unsub
}

// Close detaches from the pointer source. Safe to call more than once.
func (f *Field) Close() {
	f.mu.Lock()
	f.closed = true
	detach := f.detach
	f.detach = nil
	f.mu.Unlock()
	if detach != nil {
		detach()
	}
}
