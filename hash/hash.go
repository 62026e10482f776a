// Package hash provides the keyed blake3 hashers used for range
// fingerprinting. Both reconciliation peers must hash with the same
// key, so the key is a fixed protocol constant rather than a
// per-session secret.
package hash

import "github.com/zeebo/blake3"

const (
	// Size is the digest size of a blake3 hash (32 bytes).
	Size = 32
)

// fingerprintKey is the fixed 32-byte key for all range-fingerprint
// hashing. Changing it is a wire-incompatible protocol change.
var fingerprintKey = []byte("negentropy.range.fingerprint.v01")

func newKeyed() *blake3.Hasher {
	h, err := blake3.NewKeyed(fingerprintKey)
	if err != nil {
		panic("BUG: bad fingerprint key: " + err.Error())
	}
	return h
}
