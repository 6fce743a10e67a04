package promptdb

import (
	"crypto/sha256"
	"encoding/hex"
)

// shortHashLen is 64 bits of digest, enough to keep collisions negligible for
// libraries of a few thousand prompts.
const shortHashLen = 16

// ContentHash returns the hex SHA-256 digest of text. It is the dedup key.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ShortHash returns a truncated ContentHash for compact keys.
func ShortHash(text string) string {
	return ContentHash(text)[:shortHashLen]
}
