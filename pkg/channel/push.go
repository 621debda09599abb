package channel

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Push delivers notices to a user's device, addressed by display name.
// A production implementation would integrate a push service (FCM, APNs);
// delivery here is simulated by writing a single formatted line.
type Push struct {
	settings
}

// NewPush creates a push channel.
func NewPush(opts ...Option) *Push {
	return &Push{settings: newSettings(opts...)}
}

func (c *Push) Send(ctx context.Context, message, destination string) (Delivery, error) {
	if _, err := fmt.Fprintf(c.out, "[PUSH] Usuario: %s | Mensaje: %s\n", destination, message); err != nil {
		return Delivery{}, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return Delivery{
		ID:          uuid.New().String(),
		Kind:        KindPush,
		Destination: destination,
		Message:     message,
		SentAt:      c.now(),
	}, nil
}
