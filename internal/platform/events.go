// Package platform stands in for the display surface: it carries scroll,
// pointer and resize streams to the interaction components and resolves
// section identifiers to scroll targets.
package platform

import "github.com/akyairhashvil/carebook/internal/observe"

// PointerEvent is a pointer position in surface coordinates.
type PointerEvent struct {
	X, Y float64
}

// ResizeEvent is the new size of the surface.
type ResizeEvent struct {
	Width, Height float64
}

// ScrollSource streams the page's vertical scroll offset.
type ScrollSource interface {
	SubscribeScroll(fn func(offset float64)) (unsubscribe func())
}

// PointerSource streams pointer movement.
type PointerSource interface {
	SubscribePointer(fn func(PointerEvent)) (unsubscribe func())
}

// ResizeSource streams surface resizes.
type ResizeSource interface {
	SubscribeResize(fn func(ResizeEvent)) (unsubscribe func())
}

// Hub is the event source a host feeds. Each subscriber detaches independently.
type Hub struct {
	scroll  *observe.Topic[float64]
	pointer *observe.Topic[PointerEvent]
	resize  *observe.Topic[ResizeEvent]
}

var (
	_ ScrollSource  = (*Hub)(nil)
	_ PointerSource = (*Hub)(nil)
	_ ResizeSource  = (*Hub)(nil)
)

func NewHub() *Hub {
	return &Hub{
		scroll:  observe.NewTopic[float64](),
		pointer: observe.NewTopic[PointerEvent](),
		resize:  observe.NewTopic[ResizeEvent](),
	}
}

func (h *Hub) SubscribeScroll(fn func(offset float64)) func() { return h.scroll.Subscribe(fn) }

func (h *Hub) SubscribePointer(fn func(PointerEvent)) func() { return h.pointer.Subscribe(fn) }

func (h *Hub) SubscribeResize(fn func(ResizeEvent)) func() { return h.resize.Subscribe(fn) }

func (h *Hub) EmitScroll(offset float64) { h.scroll.Publish(offset) }

func (h *Hub) EmitPointer(x, y float64) { h.pointer.Publish(PointerEvent{X: x, Y: y}) }

func (h *Hub) EmitResize(width, height float64) {
	h.resize.Publish(ResizeEvent{Width: width, Height: height})
}

// Listeners reports the number of live subscriptions across all streams.
func (h *Hub) Listeners() int {
	return h.scroll.Len() + h.pointer.Len() + h.resize.Len()
}
