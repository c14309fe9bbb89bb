package api

import (
	"crypto/rand"
	"encoding/hex"
)

// generateState returns an unguessable OAuth state token.
func generateState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
