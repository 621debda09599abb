package channel

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Email delivers notices to an email address.
// In a real system this would call an email provider; here delivery is
// simulated by writing a single formatted line.
type Email struct {
	settings
}

// NewEmail creates an email channel.
func NewEmail(opts ...Option) *Email {
	return &Email{settings: newSettings(opts...)}
}

func (c *Email) Send(ctx context.Context, message, destination string) (Delivery, error) {
	if _, err := fmt.Fprintf(c.out, "[EMAIL] Para: %s | Mensaje: %s\n", destination, message); err != nil {
		return Delivery{}, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return Delivery{
		ID:          uuid.New().String(),
		Kind:        KindEmail,
		Destination: destination,
		Message:     message,
		SentAt:      c.now(),
	}, nil
}
