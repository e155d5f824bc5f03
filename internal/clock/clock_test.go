package clock

import (
	"testing"
	"time"
)

func TestRealAfterFuncFires(t *testing.T) {
	done := make(chan struct{})
	New().AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected callback to fire")
	}
}

func TestRealStopPreventsCallback(t *testing.T) {
	fired := make(chan struct{}, 1)
	timer := New().AfterFunc(50*time.Millisecond, func() { fired <- struct{}{} })
	if !timer.Stop() {
		t.Fatalf("expected Stop to report a pending timer")
	}
	select {
	case <-fired:
		t.Fatalf("callback fired after Stop")
	case <-time.After(100 * time.Millisecond):
	}
}
