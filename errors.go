package mmr

import "errors"

var (
	// ErrNodeNotFound is returned by a NodeStore when no digest is recorded
	// at the requested position.
	ErrNodeNotFound = errors.New("mmr: node not found")

	// ErrEmptyMMR is returned by Prove when the MMR holds no leaves.
	ErrEmptyMMR = errors.New("mmr: empty mmr has no leaves to prove")

	// ErrPositionOutOfRange is returned by Prove when pos is beyond the
	// last occupied position or does not name a leaf.
	ErrPositionOutOfRange = errors.New("mmr: position exceeds mmr size")

	// ErrProofTruncated is returned by UnmarshalBinary when the encoded
	// proof's length does not match its declared digest count (too short or
	// too long).
	ErrProofTruncated = errors.New("mmr: proof bytes truncated")

	// ErrDigestSize is returned by MarshalBinary when a proof path entry does
	// not match the hasher's fixed output size.
	ErrDigestSize = errors.New("mmr: digest has unexpected size")
)
