package domain

import "strings"

// Identity is a caller identity asserted by the external signing layer. It
// is treated as an opaque token: the ledger only compares identities for
// equality and never verifies them.
type Identity string

// Valid reports whether the identity carries a non-blank value.
func (i Identity) Valid() bool {
	return strings.TrimSpace(string(i)) != ""
}

func (i Identity) String() string {
	return string(i)
}
