package channel

import "fmt"

// Factory maps a channel token to a fresh Channel instance.
// The factory holds no state between calls beyond the construction options
// it forwards to every channel it creates.
type Factory struct {
	opts []Option
}

// NewFactory creates a channel factory. Options are applied to every
// channel the factory creates.
func NewFactory(opts ...Option) *Factory {
	return &Factory{opts: opts}
}

// Create returns a new channel for the given token.
// Tokens are matched case-insensitively; unknown tokens return
// ErrUnknownKind wrapped with the offending value.
func (f *Factory) Create(token string) (Channel, error) {
	kind, err := ParseKind(token)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindEmail:
		return NewEmail(f.opts...), nil
	case KindSMS:
		return NewSMS(f.opts...), nil
	case KindPush:
		return NewPush(f.opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, token)
	}
}
