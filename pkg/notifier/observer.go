package notifier

import (
	"context"

	"github.com/notifykit/notifykit/pkg/channel"
)

// Observer reacts to messages broadcast by a Notifier.
type Observer interface {
	// Name identifies the observer in transcript and diagnostic output.
	Name() string

	// Notify delivers a broadcast message to the observer.
	Notify(ctx context.Context, message string) error
}

// ChannelFactory resolves a channel token to a delivery channel.
// Satisfied by *channel.Factory.
type ChannelFactory interface {
	Create(token string) (channel.Channel, error)
}
