package service

import (
	"strconv"

	"reelcritic/internal/shared"
)

// parseLocalID normalizes a possibly-prefixed identifier and parses it into
// the numeric key the repositories use. Callers surface shared.ErrInvalidID
// as a validation failure; there is no default-id fallback.
func parseLocalID(raw string) (int64, error) {
	clean, err := shared.NormalizeID(raw)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(clean, 10, 64)
}
