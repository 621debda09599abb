package channel

import "errors"

var (
	// ErrUnknownKind is returned by the factory for unrecognized channel tokens.
	ErrUnknownKind = errors.New("channel.errors.unknown_kind")

	// ErrDeliveryFailed is returned when the delivery notice cannot be written.
	ErrDeliveryFailed = errors.New("channel.errors.delivery_failed")
)
