package notifier

import "errors"

var (
	// ErrNotSubscribed is returned when unsubscribing an observer that is
	// not in the subscriber list.
	ErrNotSubscribed = errors.New("notifier.errors.not_subscribed")

	// ErrNilObserver is returned when a nil observer is passed to
	// Subscribe or Unsubscribe.
	ErrNilObserver = errors.New("notifier.errors.nil_observer")
)
