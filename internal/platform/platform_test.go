package platform

import "testing"

func TestHubDeliversToEachSubscriber(t *testing.T) {
	h := NewHub()
	var a, b []float64
	unsubA := h.SubscribeScroll(func(o float64) { a = append(a, o) })
	unsubB := h.SubscribeScroll(func(o float64) { b = append(b, o) })

	h.EmitScroll(5)
	unsubA()
	h.EmitScroll(30)

	if len(a) != 1 || a[0] != 5 {
		t.Fatalf("unexpected deliveries to a: %v", a)
	}
	if len(b) != 2 || b[1] != 30 {
		t.Fatalf("unexpected deliveries to b: %v", b)
	}
	unsubB()
	if h.Listeners() != 0 {
		t.Fatalf("expected no listeners, got %d", h.Listeners())
	}
}

func TestHubPointerAndResize(t *testing.T) {
	h := NewHub()
	var got PointerEvent
	var size ResizeEvent
	defer h.SubscribePointer(func(ev PointerEvent) { got = ev })()
	defer h.SubscribeResize(func(ev ResizeEvent) { size = ev })()

	h.EmitPointer(3, 4)
	h.EmitResize(80, 24)
	if got.X != 3 || got.Y != 4 {
		t.Fatalf("unexpected pointer event: %+v", got)
	}
	if size.Width != 80 || size.Height != 24 {
		t.Fatalf("unexpected resize event: %+v", size)
	}
}

func TestSectionsResolve(t *testing.T) {
	s := NewSections()
	s.Set("pricing", 42)
	if target, ok := s.Resolve("pricing"); !ok || target.Offset != 42 {
		t.Fatalf("expected pricing at 42, got %+v %v", target, ok)
	}
	if _, ok := s.Resolve("careers"); ok {
		t.Fatalf("expected unknown section to miss")
	}
	s.Reset()
	if _, ok := s.Resolve("pricing"); ok {
		t.Fatalf("expected Reset to forget sections")
	}
}
