package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// DeriveRoomID returns the 12-hex-character token addressing the shared
// room of two users. The ids are sorted first, so both argument orders
// produce the identical token. 48 bits is an addressing token, not a
// security boundary.
func DeriveRoomID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	sum := sha256.Sum256([]byte(a + "-" + b))
	return hex.EncodeToString(sum[:])[:12]
}
