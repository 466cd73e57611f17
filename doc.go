// Package mmr implements an append-only Merkle Mountain Range: a forest of
// perfect binary Merkle trees ("mountains") of strictly decreasing height,
// bagged right to left into a single root digest.
//
// Leaves are appended with Add, which eagerly materializes every interior
// node that becomes complete as a result — the structure never sits
// half-merged between calls, so every position up to the current size
// always has a stored digest. Root bags the current peaks into one digest;
// Prove builds an inclusion proof for a single leaf (its authentication
// path to the owning peak, plus the bagged right-hand peaks and the
// reversed left-hand peaks); MerkleProof.Verify checks one against a
// claimed root.
//
// Positions are 0-based and dense: leaves and interior nodes share the same
// numbering, assigned in the order they're first written. 11 leaves fill
// positions 0-18 (size 19) across three mountains — heights 3, 1 and 0,
// peaked at positions 14, 17 and 18.
package mmr
