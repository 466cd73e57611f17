package mmr

import (
	"encoding/binary"
)

// MerkleProof is an inclusion proof for a single leaf: the authentication
// path to its mountain's peak, followed by the bagged right-hand peaks (one
// combined digest, present only when the leaf's mountain is not the
// rightmost), followed by the remaining left-hand peaks in right-to-left
// order. hasher is captured at generation time so Verify needs no extra
// parameter for it.
type MerkleProof struct {
	Size   uint64
	Path   [][]byte
	hasher Hasher
}

// Prove builds an inclusion proof for the leaf at pos. pos must name a leaf
// (height 0) already recorded in the MMR.
func (m *MMR) Prove(pos uint64) (*MerkleProof, error) {
	size := m.Size()
	if size == 0 {
		return nil, ErrEmptyMMR
	}
	if pos >= size || Height(pos) != 0 {
		return nil, ErrPositionOutOfRange
	}

	peaks := Peaks(size)
	peakIdx := make(map[uint64]int, len(peaks))
	for i, p := range peaks {
		peakIdx[p] = i
	}

	var path [][]byte
	height := uint64(0)
	curPos := pos
	for {
		if idx, ok := peakIdx[curPos]; ok {
			if err := m.appendPeakTail(&path, peaks, idx); err != nil {
				return nil, err
			}
			break
		}

		var siblingPos uint64
		if Height(curPos+1) > height {
			siblingPos = curPos - SiblingOffset(height)
			curPos = curPos + 1
		} else {
			siblingPos = curPos + SiblingOffset(height)
			curPos = curPos + SiblingOffset(height) + 1
		}
		digest, err := m.store.Get(siblingPos)
		if err != nil {
			return nil, err
		}
		path = append(path, digest)
		height++
	}

	return &MerkleProof{Size: size, Path: path, hasher: m.hasher}, nil
}

// appendPeakTail appends the bagged right-hand peaks (if any) and the
// reversed left-hand peaks to path, for the leaf's own peak at peaks[idx].
func (m *MMR) appendPeakTail(path *[][]byte, peaks []uint64, idx int) error {
	if idx < len(peaks)-1 {
		digests := make([][]byte, 0, len(peaks)-idx-1)
		for _, p := range peaks[idx+1:] {
			d, err := m.store.Get(p)
			if err != nil {
				return err
			}
			digests = append(digests, d)
		}
		*path = append(*path, bagRHS(m.hasher, digests))
	}
	for i := idx - 1; i >= 0; i-- {
		d, err := m.store.Get(peaks[i])
		if err != nil {
			return err
		}
		*path = append(*path, d)
	}
	return nil
}

// MarshalBinary encodes the proof as: u64 mmr_size, u32 path length, then
// each path entry as a fixed-size digest (the hasher's output size).
func (p *MerkleProof) MarshalBinary() ([]byte, error) {
	digestSz := digestSize(p.hasher)
	buf := make([]byte, 8+4+len(p.Path)*digestSz)
	binary.BigEndian.PutUint64(buf[0:8], p.Size)
	binary.BigEndian.PutUint32(buf[8:12], uint32(len(p.Path)))
	off := 12
	for _, d := range p.Path {
		if len(d) != digestSz {
			return nil, ErrDigestSize
		}
		copy(buf[off:off+digestSz], d)
		off += digestSz
	}
	return buf, nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary. The wire format
// carries no digest size, so the caller must supply the hasher the proof
// was generated with (the same one Verify will need).
func (p *MerkleProof) UnmarshalBinary(data []byte, hasher Hasher) error {
	if len(data) < 12 {
		return ErrProofTruncated
	}
	size := binary.BigEndian.Uint64(data[0:8])
	n := binary.BigEndian.Uint32(data[8:12])

	digestSz := digestSize(hasher)
	want := 12 + int(n)*digestSz
	if len(data) != want {
		return ErrProofTruncated
	}

	path := make([][]byte, n)
	off := 12
	for i := range path {
		d := make([]byte, digestSz)
		copy(d, data[off:off+digestSz])
		path[i] = d
		off += digestSz
	}

	p.Size = size
	p.Path = path
	p.hasher = hasher
	return nil
}
