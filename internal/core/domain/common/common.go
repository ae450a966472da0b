package common

import "strings"

type Email string

// NewEmail normalizes a raw address so that it can be used as the canonical
// lookup key: surrounding whitespace is trimmed and the address is lowercased.
func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}
