package mmr

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Hasher is a capability producing a fresh, reset digest state on every
// call: a fixed-output, deterministic, collision-resistant hash. The MMR
// calls it once per node being hashed rather than Reset-ing a shared
// instance, so a Hasher value must be safe to call repeatedly.
type Hasher func() hash.Hash

// SHA256 is the default hasher: a 256-bit cryptographic hash.
func SHA256() Hasher {
	return func() hash.Hash { return sha256.New() }
}

// SHA3256 swaps the default for SHA3-256.
func SHA3256() Hasher {
	return func() hash.Hash { return sha3.New256() }
}

// BLAKE3 swaps the default for a 32-byte BLAKE3 digest.
func BLAKE3() Hasher {
	return func() hash.Hash { return blake3.New(32, nil) }
}

// digestSize returns the fixed output size produced by h, as reported by a
// fresh instance. The proof wire codec (MarshalBinary/UnmarshalBinary) uses
// it to size each encoded path entry.
func digestSize(h Hasher) int {
	return h().Size()
}
