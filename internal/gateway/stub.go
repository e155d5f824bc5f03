// Package gateway holds the simulated submission endpoints. Nothing leaves
// the process: every submission is acknowledged after a fixed delay.
package gateway

import (
	"context"
	"time"

	"github.com/akyairhashvil/carebook/internal/clock"
	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/submission"
	"github.com/google/uuid"
)

// Stub always acknowledges after its delay unless the context ends first.
type Stub struct {
	delay time.Duration
	clock clock.Clock
}

var _ submission.Gateway = (*Stub)(nil)

// Login simulates the sign-in endpoint.
func Login(clk clock.Clock) *Stub { return &Stub{delay: config.LoginDelay, clock: clk} }

// Contact simulates the contact message endpoint.
func Contact(clk clock.Clock) *Stub { return &Stub{delay: config.ContactDelay, clock: clk} }

func (s *Stub) Submit(ctx context.Context, fields map[string]string) (submission.Ack, error) {
	elapsed := make(chan struct{})
	timer := s.clock.AfterFunc(s.delay, func() { close(elapsed) })
	select {
	case <-ctx.Done():
		timer.Stop()
		return submission.Ack{}, ctx.Err()
	case <-elapsed:
	}
	return submission.Ack{ID: uuid.NewString(), ReceivedAt: s.clock.Now()}, nil
}
