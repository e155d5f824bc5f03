// Package interpolate animates a numeric display from zero to a target.
package interpolate

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/akyairhashvil/carebook/internal/clock"
	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/observe"
)

// ErrInvalidTarget is returned for negative, NaN or infinite targets.
var ErrInvalidTarget = errors.New("interpolate: target must be a finite non-negative number")

// CounterState is the value an animated counter currently displays.
type CounterState struct {
	Current      float64
	Target       float64
	ElapsedSteps int
	TotalSteps   int
}

// Done reports whether the animation has reached its target.
func (s CounterState) Done() bool { return s.ElapsedSteps == s.TotalSteps }

// Interpolator counts from 0 to a target in a fixed number of ticks.
type Interpolator struct {
	clock clock.Clock
	steps int
	store *observe.Store[CounterState]

	mu          sync.Mutex
	timer       clock.Timer
	gen         uint64
	accumulator float64
	interval    time.Duration
	closed      bool
}

// Option configures an Interpolator.
type Option func(*Interpolator)

// WithSteps overrides the number of ticks per animation.
func WithSteps(n int) Option {
	return func(i *Interpolator) {
		if n > 0 {
			i.steps = n
		}
	}
}

// New returns an idle interpolator reporting 0.
func New(c clock.Clock, opts ...Option) *Interpolator {
	i := &Interpolator{clock: c, steps: config.CounterSteps}
	for _, opt := range opts {
		opt(i)
	}
	i.store = observe.NewStore(CounterState{TotalSteps: i.steps, ElapsedSteps: i.steps})
	return i
}

// Current returns the latest counter state.
func (i *Interpolator) Current() CounterState { return i.store.Current() }

// Subscribe registers fn for every reported value.
func (i *Interpolator) Subscribe(fn func(CounterState)) (unsubscribe func()) {
	return i.store.Subscribe(fn)
}

// Start begins animating toward target over duration. A run already in
// progress is cancelled first; its pending tick never fires.
func (i *Interpolator) Start(target float64, duration time.Duration) error {
	defer i.store.Flush()
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return nil
	}
	i.cancelLocked()
	i.accumulator = 0

	if math.IsNaN(target) || math.IsInf(target, 0) || target < 0 {
		i.store.Stage(CounterState{TotalSteps: i.steps, ElapsedSteps: i.steps})
		return ErrInvalidTarget
	}
	if target == 0 {
		i.store.Stage(CounterState{TotalSteps: i.steps, ElapsedSteps: i.steps})
		return nil
	}

	i.interval = duration / time.Duration(i.steps)
	if i.interval <= 0 {
		i.interval = time.Nanosecond
	}
	i.store.Stage(CounterState{Target: target, TotalSteps: i.steps})
	i.scheduleLocked()
	return nil
}

// Stop cancels the running animation, leaving the last reported value.
func (i *Interpolator) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.cancelLocked()
}

// Close stops the animation for good. Later calls to Start are ignored.
func (i *Interpolator) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.cancelLocked()
	i.closed = true
}

// Running reports whether a tick is scheduled.
func (i *Interpolator) Running() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.timer != nil
}

func (i *Interpolator) cancelLocked() {
	i.gen++
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
}

func (i *Interpolator) scheduleLocked() {
	gen := i.gen
	i.timer = i.clock.AfterFunc(i.interval, func() { i.tick(gen) })
}

func (i *Interpolator) tick(gen uint64) {
	defer i.store.Flush()
	i.mu.Lock()
	defer i.mu.Unlock()
	if gen != i.gen || i.closed {
		return
	}
	i.timer = nil

	s := i.store.Current()
	s.ElapsedSteps++
	if s.ElapsedSteps >= s.TotalSteps {
		s.ElapsedSteps = s.TotalSteps
		s.Current = s.Target
		i.store.Stage(s)
		return
	}
	i.accumulator += s.Target / float64(s.TotalSteps)
	next := math.Floor(i.accumulator)
	if next > s.Target {
		next = s.Target
	}
	if next > s.Current {
		s.Current = next
	}
	i.store.Stage(s)
	i.scheduleLocked()
}
