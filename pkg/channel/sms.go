package channel

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SMS delivers notices to a phone number.
// A production implementation would call an SMS gateway; delivery here is
// simulated by writing a single formatted line.
type SMS struct {
	settings
}

// NewSMS creates an SMS channel.
func NewSMS(opts ...Option) *SMS {
	return &SMS{settings: newSettings(opts...)}
}

func (c *SMS) Send(ctx context.Context, message, destination string) (Delivery, error) {
	if _, err := fmt.Fprintf(c.out, "[SMS] Para: %s | Mensaje: %s\n", destination, message); err != nil {
		return Delivery{}, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return Delivery{
		ID:          uuid.New().String(),
		Kind:        KindSMS,
		Destination: destination,
		Message:     message,
		SentAt:      c.now(),
	}, nil
}
