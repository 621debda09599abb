package channel

import (
	"context"
	"io"
	"os"
	"time"
)

// Channel sends a message to a destination address.
// Implementations are stateless and cheap; the factory mints a fresh
// instance per delivery rather than pooling them.
type Channel interface {
	// Send emits a formatted delivery notice for the message and returns
	// the resulting delivery record.
	Send(ctx context.Context, message, destination string) (Delivery, error)
}

// Delivery is the record minted for every simulated send.
type Delivery struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Destination string    `json:"destination"`
	Message     string    `json:"message"`
	SentAt      time.Time `json:"sent_at"`
}

// Option configures channel construction.
type Option func(*settings)

type settings struct {
	out io.Writer
	now func() time.Time
}

// WithOutput sets the writer delivery notices are emitted to.
// Nil writers are ignored; the default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// WithClock overrides the clock used to stamp delivery records.
// Useful for deterministic tests; nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

func newSettings(opts ...Option) settings {
	s := settings{
		out: os.Stdout,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
