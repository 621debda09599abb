package channel

import (
	"fmt"
	"strings"
)

// Kind identifies a delivery channel variant.
type Kind string

const (
	KindEmail Kind = "EMAIL"
	KindSMS   Kind = "SMS"
	KindPush  Kind = "PUSH"
)

// ParseKind normalizes a channel token to a known Kind.
// Matching is case-insensitive; surrounding whitespace is ignored.
func ParseKind(token string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(token))) {
	case KindEmail:
		return KindEmail, nil
	case KindSMS:
		return KindSMS, nil
	case KindPush:
		return KindPush, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, token)
	}
}

// String returns the canonical upper-case token.
func (k Kind) String() string {
	return string(k)
}
