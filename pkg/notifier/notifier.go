package notifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/notifykit/notifykit/pkg/logger"
)

// Notifier maintains an ordered subscriber list and broadcasts messages to
// it. Subscribers are referenced, not copied, and notified strictly in
// subscription order. Duplicate subscriptions are allowed and produce
// duplicate notifications.
//
// The notifier is synchronous and single-goroutine: Publish runs a plain
// sequential loop on the calling goroutine.
type Notifier struct {
	observers []Observer
	out       io.Writer
	logger    *slog.Logger
	isolate   bool
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithTranscript sets the writer transcript lines are emitted to.
// Nil writers are ignored; the default is os.Stdout.
func WithTranscript(w io.Writer) NotifierOption {
	return func(n *Notifier) {
		if w != nil {
			n.out = w
		}
	}
}

// WithLogger sets the logger used for operational logging.
func WithLogger(l *slog.Logger) NotifierOption {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithFailureIsolation makes Publish continue past failing subscribers.
// Each failure is logged and the joined errors are returned after the loop
// completes, so one bad channel preference cannot block delivery to the
// remaining subscribers. The default is the strict mode: the first failure
// aborts the rest of the broadcast.
func WithFailureIsolation() NotifierOption {
	return func(n *Notifier) {
		n.isolate = true
	}
}

// NewNotifier creates an empty notifier.
func NewNotifier(opts ...NotifierOption) *Notifier {
	n := &Notifier{
		out:    os.Stdout,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Subscribe appends the observer to the subscriber list. Subscribing the
// same observer twice is not deduplicated; it will be notified twice.
func (n *Notifier) Subscribe(o Observer) error {
	if o == nil {
		return ErrNilObserver
	}

	n.observers = append(n.observers, o)
	fmt.Fprintf(n.out, "[INFO] %s suscrito.\n", o.Name())
	return nil
}

// Unsubscribe removes the first matching reference from the subscriber
// list. It returns ErrNotSubscribed when the observer is not present.
func (n *Notifier) Unsubscribe(o Observer) error {
	if o == nil {
		return ErrNilObserver
	}

	for i, sub := range n.observers {
		if sub == o {
			n.observers = slices.Delete(n.observers, i, i+1)
			fmt.Fprintf(n.out, "[INFO] %s dado de baja.\n", o.Name())
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrNotSubscribed, o.Name())
}

// Len returns the current number of subscriptions.
func (n *Notifier) Len() int {
	return len(n.observers)
}

// Publish broadcasts the message to every subscriber in subscription
// order. The subscriber list is snapshotted first, so removals performed
// by observers during the broadcast take effect on the next Publish.
//
// In the default strict mode the first observer error aborts the
// remaining iteration. With WithFailureIsolation each failure is logged
// and collected, and the joined errors are returned once every subscriber
// has been attempted.
func (n *Notifier) Publish(ctx context.Context, message string) error {
	fmt.Fprintf(n.out, "[NOTIFICADOR] Enviando mensaje a %d observador(es)...\n", len(n.observers))

	var errs []error
	for _, o := range slices.Clone(n.observers) {
		if err := o.Notify(ctx, message); err != nil {
			if !n.isolate {
				return err
			}

			n.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to notify subscriber",
				logger.Recipient(o.Name()),
				logger.Error(err),
			)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
