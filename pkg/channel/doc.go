// Package channel provides delivery channel implementations for notification
// dispatch, with a factory that selects a channel per recipient preference.
//
// Channels are stateless behavior objects: each Send emits a single
// human-readable delivery notice to a configurable writer and returns a
// Delivery record stamped with a unique ID. No real transport is performed;
// the package is the simulation boundary behind which a provider integration
// (SMTP, SMS gateway, push service) would live.
//
// # Usage
//
//	factory := channel.NewFactory()
//
//	ch, err := factory.Create("email") // case-insensitive
//	if err != nil {
//	    // channel.ErrUnknownKind for unrecognized tokens
//	}
//
//	delivery, err := ch.Send(ctx, "Hola Ana: bienvenida", "ana@example.com")
//	// Emits: [EMAIL] Para: ana@example.com | Mensaje: Hola Ana: bienvenida
//
// Adding a new variant requires only a new type implementing Channel and a
// case in the factory; existing variants are untouched.
package channel
