package mmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasherDigestSizes(t *testing.T) {
	tests := []struct {
		name   string
		hasher Hasher
		want   int
	}{
		{"sha256", SHA256(), 32},
		{"sha3-256", SHA3256(), 32},
		{"blake3", BLAKE3(), 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, digestSize(tt.hasher))
		})
	}
}

func TestHashersProduceDistinctDigests(t *testing.T) {
	leaf := []byte("same input, different hasher")
	sha256Digest := combine(SHA256(), leaf)
	sha3Digest := combine(SHA3256(), leaf)
	blake3Digest := combine(BLAKE3(), leaf)

	assert.NotEqual(t, sha256Digest, sha3Digest)
	assert.NotEqual(t, sha256Digest, blake3Digest)
	assert.NotEqual(t, sha3Digest, blake3Digest)
}
