package observe

import (
	"testing"
	"time"
)

func TestStoreCurrentAndNotify(t *testing.T) {
	s := NewStore(1)
	var seen []int
	unsub := s.Subscribe(func(v int) { seen = append(seen, v) })

	s.Set(2)
	s.Set(3)
	if got := s.Current(); got != 3 {
		t.Fatalf("Current = %d, want 3", got)
	}
	if len(seen) != 2 || seen[0] != 2 || seen[1] != 3 {
		t.Fatalf("unexpected notifications: %v", seen)
	}

	unsub()
	unsub()
	s.Set(4)
	if len(seen) != 2 {
		t.Fatalf("expected no notification after unsubscribe, got %v", seen)
	}
	if s.Subscribers() != 0 {
		t.Fatalf("expected zero subscribers, got %d", s.Subscribers())
	}
}

func TestStoreNotifiesInSubscriptionOrder(t *testing.T) {
	s := NewStore("")
	var order []string
	s.Subscribe(func(string) { order = append(order, "a") })
	s.Subscribe(func(string) { order = append(order, "b") })
	s.Set("x")
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestTopicUnsubscribeDuringPublish(t *testing.T) {
	topic := NewTopic[int]()
	calls := 0
	var unsub func()
	unsub = topic.Subscribe(func(int) {
		calls++
		unsub()
	})
	topic.Publish(1)
	topic.Publish(2)
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	if topic.Len() != 0 {
		t.Fatalf("expected no subscribers, got %d", topic.Len())
	}
}

func TestStoreSubscriberMayReadCurrent(t *testing.T) {
	s := NewStore(0)
	var seen []int
	s.Subscribe(func(int) { seen = append(seen, s.Current()) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Set(1)
		s.Set(2)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Set blocked while a subscriber read Current")
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("unexpected values seen: %v", seen)
	}
}

func TestStoreNestedSetIsDeliveredAfterCurrent(t *testing.T) {
	s := NewStore(0)
	var order []int
	s.Subscribe(func(v int) {
		order = append(order, v)
		if v == 1 {
			s.Set(2)
			if len(order) != 1 {
				t.Fatalf("nested Set delivered before the outer notification finished")
			}
		}
	})
	s.Set(1)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("unexpected delivery order: %v", order)
	}
	if s.Current() != 2 {
		t.Fatalf("Current = %d, want 2", s.Current())
	}
}

func TestStoreStageDefersNotification(t *testing.T) {
	s := NewStore("a")
	var seen []string
	s.Subscribe(func(v string) { seen = append(seen, v) })

	s.Stage("b")
	s.Stage("c")
	if s.Current() != "c" {
		t.Fatalf("expected staged value to be current, got %q", s.Current())
	}
	if len(seen) != 0 {
		t.Fatalf("expected no notification before Flush, got %v", seen)
	}
	s.Flush()
	s.Flush()
	if len(seen) != 2 || seen[0] != "b" || seen[1] != "c" {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}
