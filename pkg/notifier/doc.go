// Package notifier implements a synchronous publish/subscribe registry for
// notification dispatch.
//
// A Notifier (the subject) keeps an ordered subscriber list and broadcasts
// messages to it. A Recipient (the observer) holds contact data and a
// preferred channel token; on notification it resolves a delivery channel
// through an injected factory and performs a simulated send. Delivery
// history can be captured with a Journal.
//
// # Architecture
//
//   - Notifier: ordered subscriber registry with Subscribe/Unsubscribe/Publish
//   - Recipient: observer resolving its channel per notification
//   - Journal: pluggable delivery history (MemoryJournal included)
//
// # Basic Usage
//
//	factory := channel.NewFactory()
//	n := notifier.NewNotifier()
//
//	ana := notifier.NewRecipient("Ana", "ana@example.com", "+5215512345678", "email", factory)
//	_ = n.Subscribe(ana)
//
//	err := n.Publish(ctx, "Nueva actualización disponible: versión 1.2.0")
//
// # Failure policy
//
// By default the first subscriber error aborts the remaining broadcast.
// WithFailureIsolation switches to best-effort delivery: failures are
// logged, the rest of the list is still attempted, and the joined errors
// are returned at the end.
package notifier
