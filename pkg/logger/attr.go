package logger

import (
	"log/slog"
	"strconv"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Recipient records a recipient name under the key "recipient".
func Recipient(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("recipient", name)
}

// Channel records a channel kind under the key "channel".
// If kind is nil, it returns an empty Attr.
func Channel(kind any) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.Any("channel", kind)
}

// Destination records a delivery destination under the key "destination".
func Destination(dest string) slog.Attr {
	if dest == "" {
		return slog.Attr{}
	}
	return slog.String("destination", dest)
}

// Component records a component name under the key "component".
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}
