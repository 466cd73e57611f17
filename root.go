package mmr

// Root returns the MMR's current root digest: the bagging of all peaks,
// starting from the two rightmost and folding leftward. ok is false when
// the MMR is empty (no leaves have been added).
func (m *MMR) Root() (digest []byte, ok bool) {
	peaks := Peaks(m.Size())
	if len(peaks) == 0 {
		return nil, false
	}
	digest, err := m.bagPeaks(peaks)
	if err != nil {
		// Peaks only returns positions that Add has already populated, so
		// a missing digest here means the NodeStore violated the density
		// invariant it was handed under.
		panic(err)
	}
	return digest, true
}

// bagPeaks folds the digests at the given peak positions right to left:
// pop the two rightmost, push H(right || left), repeat until one remains.
// Ordering is load-bearing — right-before-left in every pair.
func (m *MMR) bagPeaks(peaks []uint64) ([]byte, error) {
	digests := make([][]byte, len(peaks))
	for i, pos := range peaks {
		d, err := m.store.Get(pos)
		if err != nil {
			return nil, err
		}
		digests[i] = d
	}
	return bagRHS(m.hasher, digests), nil
}

// bagRHS merges a slice of peak digests, highest (leftmost) first, into a
// single digest by repeatedly combining the two rightmost entries. It is
// the shared fold used both for the whole-MMR root and for bagging the
// right-hand peaks of a proof.
func bagRHS(h Hasher, digests [][]byte) []byte {
	if len(digests) == 0 {
		return nil
	}
	acc := append([][]byte(nil), digests...)
	for len(acc) > 1 {
		right := acc[len(acc)-1]
		left := acc[len(acc)-2]
		acc = acc[:len(acc)-2]
		acc = append(acc, combine(h, right, left))
	}
	return acc[0]
}
