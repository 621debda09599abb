package notifier

import (
	"context"

	"github.com/notifykit/notifykit/pkg/channel"
)

// Journal records delivery history.
type Journal interface {
	// Append stores a delivery record.
	Append(ctx context.Context, d channel.Delivery) error

	// List returns all recorded deliveries in append order.
	List(ctx context.Context) ([]channel.Delivery, error)

	// CountForDestination returns how many deliveries were recorded for
	// the given destination address.
	CountForDestination(ctx context.Context, destination string) (int, error)
}
