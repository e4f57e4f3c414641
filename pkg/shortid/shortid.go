// Package shortid produces compact URL-safe record identifiers.
package shortid

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// Length is the number of characters in every generated identifier.
const Length = 22

// New returns the base64url form (no padding) of a random uuid. The
// alphabet is [A-Za-z0-9_-], so ids can be used as path segments as-is.
func New() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// Generator adapts New to the catalog's identifier port.
type Generator struct{}

func (Generator) NewID() string {
	return New()
}
