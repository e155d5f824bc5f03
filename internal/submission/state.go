package submission

import (
	"fmt"
	"maps"
)

// Status is the lifecycle position of a form.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusSubmitting:
		return "Submitting"
	case StatusSucceeded:
		return "Succeeded"
	case StatusFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Event drives a Status transition.
type Event int

const (
	EventSubmit Event = iota
	EventResolve
	EventReject
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventSubmit:
		return "submit"
	case EventResolve:
		return "resolve"
	case EventReject:
		return "reject"
	case EventReset:
		return "reset"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

type transitionKey struct {
	from  Status
	event Event
}

// transitions is the complete lifecycle. Pairs not listed are rejected.
var transitions = map[transitionKey]Status{
	{StatusIdle, EventSubmit}:        StatusSubmitting,
	{StatusSubmitting, EventResolve}: StatusSucceeded,
	{StatusSubmitting, EventReject}:  StatusFailed,
	{StatusSucceeded, EventReset}:    StatusIdle,
	{StatusFailed, EventReset}:       StatusIdle,
}

// Next returns the status reached from s on ev.
func Next(s Status, ev Event) (Status, error) {
	next, ok := transitions[transitionKey{s, ev}]
	if !ok {
		return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, s)
	}
	return next, nil
}

// State is a snapshot of a form.
type State struct {
	Fields    map[string]string
	Status    Status
	LastError ErrorKind
	// Err carries the detail behind LastError.
	Err error
	// Ack is the receipt of the last successful submission.
	Ack Ack
}

func (s State) clone() State {
	s.Fields = maps.Clone(s.Fields)
	return s
}
