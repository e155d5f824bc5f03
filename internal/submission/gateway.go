package submission

import (
	"context"
	"time"
)

// Ack is the gateway's receipt for an accepted submission.
type Ack struct {
	ID         string
	ReceivedAt time.Time
}

// Gateway receives submitted field values.
//
//go:generate mockgen -source=gateway.go -destination=mock_gateway_test.go -package=submission
type Gateway interface {
	Submit(ctx context.Context, fields map[string]string) (Ack, error)
}
