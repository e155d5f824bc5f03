package nav

import (
	"testing"
	"time"

	"github.com/akyairhashvil/carebook/internal/platform"
)

type recordingScroller struct {
	targets []platform.Target
	smooth  []bool
}

func (r *recordingScroller) ScrollTo(target platform.Target, smooth bool) {
	r.targets = append(r.targets, target)
	r.smooth = append(r.smooth, smooth)
}

func newSpy() (*ScrollSpy, *platform.Sections, *recordingScroller) {
	sections := platform.NewSections()
	scroller := &recordingScroller{}
	return New(sections, scroller), sections, scroller
}

func TestScrolledBoundary(t *testing.T) {
	tests := []struct {
		offset float64
		want   bool
	}{
		{0, false},
		{19, false},
		{20, false},
		{20.5, true},
		{21, true},
		{400, true},
	}
	for _, tt := range tests {
		spy, _, _ := newSpy()
		spy.OnScroll(tt.offset)
		if got := spy.Current().Scrolled; got != tt.want {
			t.Fatalf("offset %v: Scrolled = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestOnScrollIsIdempotent(t *testing.T) {
	spy, _, _ := newSpy()
	notified := 0
	spy.Subscribe(func(State) { notified++ })

	spy.OnScroll(50)
	spy.OnScroll(50)
	spy.OnScroll(60)
	if notified != 1 {
		t.Fatalf("expected one notification, got %d", notified)
	}
	spy.OnScroll(10)
	if notified != 2 || spy.Current().Scrolled {
		t.Fatalf("expected scroll back to un-compact the nav")
	}
}

func TestNavigateAlwaysClosesMenu(t *testing.T) {
	for _, open := range []bool{false, true} {
		spy, sections, scroller := newSpy()
		sections.Set("pricing", 64)
		if open {
			spy.ToggleMenu()
		}
		if !spy.Navigate("pricing") {
			t.Fatalf("expected pricing to resolve")
		}
		if spy.Current().MenuOpen {
			t.Fatalf("menu open after navigation (initially open=%v)", open)
		}
		if len(scroller.targets) != 1 || scroller.targets[0].Offset != 64 || !scroller.smooth[0] {
			t.Fatalf("expected a smooth scroll to 64, got %+v", scroller.targets)
		}
	}
}

func TestNavigateUnknownSectionIsNoOp(t *testing.T) {
	spy, _, scroller := newSpy()
	spy.ToggleMenu()
	if spy.Navigate("careers") {
		t.Fatalf("expected unknown section to report false")
	}
	if len(scroller.targets) != 0 {
		t.Fatalf("expected no scroll for an unknown section")
	}
	if spy.Current().MenuOpen {
		t.Fatalf("expected menu closed after selecting a destination")
	}
}

func TestToggleMenuIndependentOfScroll(t *testing.T) {
	spy, _, _ := newSpy()
	spy.ToggleMenu()
	spy.OnScroll(100)
	st := spy.Current()
	if !st.MenuOpen || !st.Scrolled {
		t.Fatalf("expected both flags set, got %+v", st)
	}
	spy.ToggleMenu()
	if spy.Current().MenuOpen {
		t.Fatalf("expected second toggle to close the menu")
	}
}

func TestAttachAndCloseUnsubscribeOnce(t *testing.T) {
	hub := platform.NewHub()
	spy, _, _ := newSpy()
	spy.Attach(hub)
	spy.Attach(hub)
	if hub.Listeners() != 1 {
		t.Fatalf("expected one scroll listener, got %d", hub.Listeners())
	}

	hub.EmitScroll(30)
	if !spy.Current().Scrolled {
		t.Fatalf("expected hub scroll to reach the spy")
	}

	spy.Close()
	spy.Close()
	if hub.Listeners() != 0 {
		t.Fatalf("expected listener released, got %d", hub.Listeners())
	}
	hub.EmitScroll(0)
	if !spy.Current().Scrolled {
		t.Fatalf("closed spy must not react to scroll")
	}
}

func TestSubscriberMayReadStateDuringChange(t *testing.T) {
	spy, sections, _ := newSpy()
	sections.Set("pricing", 80)
	var seen []State
	spy.Subscribe(func(State) { seen = append(seen, spy.Current()) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		spy.OnScroll(40)
		spy.ToggleMenu()
		spy.Navigate("pricing")
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("nav blocked while a subscriber read Current")
	}
	want := []State{{Scrolled: true}, {Scrolled: true, MenuOpen: true}, {Scrolled: true}}
	if len(seen) != len(want) {
		t.Fatalf("expected %d notifications, got %v", len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("notification %d: expected %+v, got %+v", i, want[i], seen[i])
		}
	}
}
