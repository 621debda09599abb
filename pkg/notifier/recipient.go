package notifier

import (
	"context"
	"fmt"

	"github.com/notifykit/notifykit/pkg/channel"
)

// greetingTemplate personalizes broadcast messages per recipient.
const greetingTemplate = "Hola %s: %s"

// Recipient is an observer holding contact data and a preferred channel
// token. On notification it resolves a channel through the injected factory
// and performs a simulated send to the destination field matching the
// channel kind.
//
// Recipients are immutable after construction and safe to share across
// notifiers; they are referenced by subscriber lists, never copied.
type Recipient struct {
	name      string
	email     string
	phone     string
	preferred string

	factory ChannelFactory
	journal Journal
}

// RecipientOption configures a Recipient.
type RecipientOption func(*Recipient)

// WithJournal records every delivery the recipient performs.
func WithJournal(j Journal) RecipientOption {
	return func(r *Recipient) {
		if j != nil {
			r.journal = j
		}
	}
}

// NewRecipient creates a recipient with fixed contact data. The preferred
// channel token is validated lazily, when a notification is processed.
func NewRecipient(name, email, phone, preferred string, factory ChannelFactory, opts ...RecipientOption) *Recipient {
	r := &Recipient{
		name:      name,
		email:     email,
		phone:     phone,
		preferred: preferred,
		factory:   factory,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Name returns the recipient's display name.
func (r *Recipient) Name() string { return r.name }

// Email returns the recipient's email address.
func (r *Recipient) Email() string { return r.email }

// Phone returns the recipient's phone number.
func (r *Recipient) Phone() string { return r.phone }

// Preferred returns the raw preferred channel token.
func (r *Recipient) Preferred() string { return r.preferred }

// Notify personalizes the message, resolves the preferred channel through
// the factory and sends to the destination field matching the channel kind.
// Factory and send errors propagate to the caller annotated with the
// recipient's name.
func (r *Recipient) Notify(ctx context.Context, message string) error {
	kind, err := channel.ParseKind(r.preferred)
	if err != nil {
		return fmt.Errorf("recipient %s: %w", r.name, err)
	}

	ch, err := r.factory.Create(string(kind))
	if err != nil {
		return fmt.Errorf("recipient %s: %w", r.name, err)
	}

	delivery, err := ch.Send(ctx, fmt.Sprintf(greetingTemplate, r.name, message), r.destination(kind))
	if err != nil {
		return fmt.Errorf("recipient %s: %w", r.name, err)
	}

	if r.journal != nil {
		if err := r.journal.Append(ctx, delivery); err != nil {
			return fmt.Errorf("recipient %s: %w", r.name, err)
		}
	}

	return nil
}

// destination selects the contact field matching the channel kind.
func (r *Recipient) destination(kind channel.Kind) string {
	switch kind {
	case channel.KindSMS:
		return r.phone
	case channel.KindPush:
		return r.name
	default:
		return r.email
	}
}
