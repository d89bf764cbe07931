package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// MaxKeyLen bounds the logical key length kept verbatim in a storage key.
// Longer keys are replaced by "h:" and the hex sha256 of the key.
const MaxKeyLen = 200

const hashedTag = "h:"

// StorageKey returns "<prefix>:<key>", hashing key when it is longer than
// MaxKeyLen so provider key sizes stay bounded. Keys that already start with
// "h:" are always hashed, so a verbatim key never collides with a hashed one.
func StorageKey(prefix, key string) string {
	if len(key) <= MaxKeyLen && !strings.HasPrefix(key, hashedTag) {
		return prefix + ":" + key
	}
	sum := sha256.Sum256([]byte(key))
	return prefix + ":" + hashedTag + hex.EncodeToString(sum[:])
}
