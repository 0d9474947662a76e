package util

import (
	"crypto/sha256"
	"fmt"
)

// WindowKey returns a deterministic key for an encoded input window.
// Slot order is significant, so the window bytes are hashed as-is.
func WindowKey(prefix string, window []byte) string {
	sum := sha256.Sum256(window)
	return fmt.Sprintf("%s:%x", prefix, sum)[:len(prefix)+1+16] // prefix + ":" + first 16 hex chars
}
