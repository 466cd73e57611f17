package mmr

// MMR is an append-only Merkle Mountain Range: a forest of perfect binary
// Merkle trees of strictly decreasing height, joined by a "bagging" rule
// into a single root digest. See doc.go for the construction this follows.
//
// An MMR owns its NodeStore exclusively. Add is not safe for concurrent
// use; concurrent Root/Prove calls are safe only if the NodeStore's Get is
// safe for concurrent use (memStore's is).
type MMR struct {
	store  NodeStore
	hasher Hasher

	// lastPos is the highest occupied position, or -1 when empty. MMR size
	// (total node count, leaves plus interior) is always lastPos+1.
	lastPos int64
}

// Option configures an MMR at construction.
type Option func(*MMR)

// WithStore supplies a NodeStore other than the in-memory default.
func WithStore(store NodeStore) Option {
	return func(m *MMR) { m.store = store }
}

// WithHasher supplies a Hasher other than SHA256.
func WithHasher(h Hasher) Option {
	return func(m *MMR) { m.hasher = h }
}

// WithSize resumes an MMR that already holds size nodes in the supplied
// store, rather than starting empty. The caller is responsible for size
// being the true node count the store was last persisted at.
func WithSize(size uint64) Option {
	return func(m *MMR) { m.lastPos = int64(size) - 1 }
}

// New creates an empty MMR. The default hasher is SHA256 and the default
// store is an in-memory map.
func New(opts ...Option) *MMR {
	m := &MMR{
		store:   newMemStore(),
		hasher:  SHA256(),
		lastPos: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Size returns the current MMR size: one greater than the highest occupied
// position, equivalently the total node count including interior nodes.
func (m *MMR) Size() uint64 {
	return uint64(m.lastPos + 1)
}

// combine computes H(a || b) using a fresh instance of the MMR's hasher.
// Both leaf digests (H(leafBytes)) and interior digests (H(left || right))
// go through this same bare, unprefixed domain.
func combine(h Hasher, parts ...[]byte) []byte {
	digest := h()
	for _, p := range parts {
		digest.Write(p)
	}
	return digest.Sum(nil)
}

// Add appends a leaf and returns the position it was recorded at.
//
// After Add returns, every position in [0, Size()-1] has a stored digest:
// the append eagerly materializes any interior node that became complete as
// a result of this leaf landing, so the structure never sits in a
// half-finished, in-progress-merge state between calls.
func (m *MMR) Add(leaf []byte) (uint64, error) {
	leafPos := uint64(m.lastPos + 1)
	m.lastPos++

	if err := m.store.Put(leafPos, combine(m.hasher, leaf)); err != nil {
		return 0, err
	}

	height := uint64(0)
	for Height(uint64(m.lastPos)+1) > height {
		m.lastPos++
		parentPos := uint64(m.lastPos)

		left := parentPos - (uint64(2) << height)
		right := left + SiblingOffset(height)

		leftDigest, err := m.store.Get(left)
		if err != nil {
			return 0, err
		}
		rightDigest, err := m.store.Get(right)
		if err != nil {
			return 0, err
		}

		if err := m.store.Put(parentPos, combine(m.hasher, leftDigest, rightDigest)); err != nil {
			return 0, err
		}
		height++
	}
	return leafPos, nil
}
