// Package submission drives a form through its submit lifecycle:
// Idle, Submitting, then Succeeded or Failed, then back to Idle.
package submission

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/akyairhashvil/carebook/internal/clock"
	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/observe"
	"github.com/akyairhashvil/carebook/internal/util"
)

// Controller owns one form. At most one submission is in flight at a time.
type Controller struct {
	form    Form
	gateway Gateway
	clock   clock.Clock
	timeout time.Duration
	window  time.Duration
	store   *observe.Store[State]

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	reset  clock.Timer
	closed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimeout bounds each gateway call.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithConfirmationWindow sets how long Succeeded is shown before the reset.
func WithConfirmationWindow(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.window = d
		}
	}
}

func NewController(form Form, gw Gateway, clk clock.Clock, opts ...Option) *Controller {
	c := &Controller{
		form:    form,
		gateway: gw,
		clock:   clk,
		timeout: config.SubmitTimeout,
		window:  config.ConfirmationWindow,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.store = observe.NewStore(State{Fields: form.Blank(), Status: StatusIdle})
	return c
}

// Form returns the schema the controller validates against.
func (c *Controller) Form() Form { return c.form }

// Current returns a snapshot of the form state.
func (c *Controller) Current() State { return c.store.Current().clone() }

// Subscribe registers fn for every state change. fn receives its own copy of
// the fields. It runs with no controller lock held, so it may read state or
// call back into the controller.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	return c.store.Subscribe(func(s State) { fn(s.clone()) })
}

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool { return c.store.Current().Status == StatusSubmitting }

// CanSubmit reports whether the submit action is enabled.
func (c *Controller) CanSubmit() bool { return c.store.Current().Status == StatusIdle }

// SetField updates one value. Fields are only editable while idle.
func (c *Controller) SetField(name, value string) error {
	defer c.store.Flush()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if _, ok := c.form.Field(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	s := c.store.Current().clone()
	if s.Status != StatusIdle {
		return ErrNotEditable
	}
	if s.Fields[name] == value {
		return nil
	}
	s.Fields[name] = value
	c.store.Stage(s)
	return nil
}

// DismissError clears the surfaced error of an idle form.
func (c *Controller) DismissError() {
	defer c.store.Flush()
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.store.Current().clone()
	if c.closed || s.Status != StatusIdle || s.LastError == ErrorNone {
		return
	}
	s.LastError, s.Err = ErrorNone, nil
	c.store.Stage(s)
}

// Submit validates the fields and, if they pass, hands a copy of them to the
// gateway. It returns once the submission has started; the outcome arrives
// through state changes. A submit while not idle is ignored with ErrBusy.
func (c *Controller) Submit(ctx context.Context) error {
	defer c.store.Flush()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	s := c.store.Current().clone()
	if s.Status != StatusIdle {
		return ErrBusy
	}
	if err := c.form.Validate(s.Fields); err != nil {
		s.LastError, s.Err = ErrorValidation, err
		c.store.Stage(s)
		return err
	}
	s.LastError, s.Err = ErrorNone, nil
	if err := c.fireLocked(&s, EventSubmit); err != nil {
		return err
	}

	c.gen++
	gen := c.gen
	callCtx, cancelCause := context.WithCancelCause(ctx)
	deadline := c.clock.AfterFunc(c.timeout, func() { cancelCause(context.DeadlineExceeded) })
	cancel := func() {
		deadline.Stop()
		cancelCause(context.Canceled)
	}
	c.cancel = cancel
	go c.await(callCtx, cancel, gen, maps.Clone(s.Fields))
	return nil
}

// Close cancels any in-flight submission and pending reset. No new state
// change is made after Close returns.
func (c *Controller) Close() {
	defer c.store.Flush()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.reset != nil {
		c.reset.Stop()
		c.reset = nil
	}
}

// fireLocked applies ev to s and publishes the result.
func (c *Controller) fireLocked(s *State, ev Event) error {
	next, err := Next(s.Status, ev)
	if err != nil {
		return err
	}
	s.Status = next
	c.store.Stage(s.clone())
	return nil
}

func (c *Controller) await(ctx context.Context, cancel context.CancelFunc, gen uint64, fields map[string]string) {
	ack, err := c.call(ctx, fields)
	// The deadline timer must be stopped before the outcome is published.
	cancel()

	defer c.store.Flush()
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.closed {
		return
	}
	c.cancel = nil
	s := c.store.Current().clone()

	if err != nil {
		netErr := &NetworkError{Op: "submit " + c.form.Name, Err: err}
		util.LogError("submission", netErr)
		s.LastError, s.Err = ErrorNetwork, netErr
		if ferr := c.fireLocked(&s, EventReject); ferr != nil {
			util.LogError("submission", ferr)
			return
		}
		// Failed returns to Idle at once so the user can retry.
		if ferr := c.fireLocked(&s, EventReset); ferr != nil {
			util.LogError("submission", ferr)
		}
		return
	}

	s.Ack = ack
	// Arm the reset before publishing Succeeded; the callback blocks on mu
	// until this transition is done.
	c.reset = c.clock.AfterFunc(c.window, func() { c.autoReset(gen) })
	if ferr := c.fireLocked(&s, EventResolve); ferr != nil {
		util.LogError("submission", ferr)
		c.reset.Stop()
		c.reset = nil
	}
}

func (c *Controller) autoReset(gen uint64) {
	defer c.store.Flush()
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.closed {
		return
	}
	c.reset = nil
	s := c.store.Current().clone()
	s.Fields = c.form.Blank()
	if err := c.fireLocked(&s, EventReset); err != nil {
		util.LogError("submission", err)
	}
}

type callResult struct {
	ack Ack
	err error
}

// call runs the gateway on its own goroutine so a gateway that ignores its
// context still cannot hold the form in Submitting past the timeout.
func (c *Controller) call(ctx context.Context, fields map[string]string) (Ack, error) {
	done := make(chan callResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callResult{err: fmt.Errorf("gateway panic: %v", r)}
			}
		}()
		ack, err := c.gateway.Submit(ctx, fields)
		done <- callResult{ack: ack, err: err}
	}()
	select {
	case res := <-done:
		if res.err != nil && ctx.Err() != nil {
			// Report why the call was cut short, e.g. the deadline.
			return res.ack, context.Cause(ctx)
		}
		return res.ack, res.err
	case <-ctx.Done():
		return Ack{}, context.Cause(ctx)
	}
}
