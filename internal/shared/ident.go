package shared

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when an identifier contains no digits at all.
var ErrInvalidID = errors.New("identifier contains no numeric component")

// NormalizeID converts a possibly-prefixed identifier (e.g. "user101") into
// the plain numeric string the storage layer keys on. Every non-digit is
// stripped; an identifier that strips down to nothing is an error, never a
// default id. Callers must treat it as invalid rather than silently
// addressing the collection endpoint.
func NormalizeID(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", ErrInvalidID
	}
	return b.String(), nil
}

// IsNumericID reports whether raw is already a plain numeric id. External
// catalog ids ("tt0468569" style) carry digits but belong to a different
// namespace; only all-digit ids address the local store.
func IsNumericID(raw string) bool {
	if raw == "" {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
