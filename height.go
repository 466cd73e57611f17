package mmr

// Position arithmetic.
//
// Positions are 0-based, but the height/peak arithmetic is cleanest when
// reasoned about on the equivalent 1-based position, because a left-spine
// node of height h is then exactly 2^(h+1) - 1, ie all-ones in binary. See
// doc.go for the worked example this is built on.
//
// This file follows the same approach as mimblewimble/grin's pmmr.rs and
// jjyr/mmr.py's tree_height/sibling_offset/left_peak_height_pos: a position
// is moved leftwards, by the size of the largest perfect subtree preceding
// it, until it lands on the all-ones spine; the bit count of that spine
// position, minus one, is the height.

// Height returns the height of the subtree rooted at the 0-based position
// pos. Leaves are height 0.
func Height(pos uint64) uint64 {
	x := pos + 1
	for !allOnes(x) {
		msb := uint64(1) << (bitLength64(x) - 1)
		x -= msb - 1
	}
	return bitLength64(x) - 1
}

// SiblingOffset returns the distance, in positions, between two sibling
// roots of the given height.
func SiblingOffset(height uint64) uint64 {
	return (uint64(2) << height) - 1
}

// LeftPeak returns the height and position of the leftmost (tallest) peak
// of an MMR holding size nodes. height is -1 and pos is 0 when size == 0
// (no peaks, the empty MMR).
func LeftPeak(size uint64) (height int64, pos uint64) {
	if size == 0 {
		return -1, 0
	}
	height, pos = 0, 0
	for {
		nextHeight := height + 1
		candidate := (uint64(1) << uint64(nextHeight+1)) - 2
		if candidate >= size {
			break
		}
		height, pos = nextHeight, candidate
	}
	return height, pos
}

// Peaks returns the positions of the mountain peaks of an MMR holding size
// nodes, left to right (highest peak first). Returns nil for size == 0.
func Peaks(size uint64) []uint64 {
	height, pos := LeftPeak(size)
	if height < 0 {
		return nil
	}

	peaks := []uint64{pos}
	h := height
	for h > 0 {
		// Jump to the right sibling at the current height, then walk down
		// the left children until landing back inside the MMR. If h drops
		// below zero during that walk, there is no next peak — the walk
		// wrapped back onto the one we already have, and must not be
		// recorded a second time.
		pos += SiblingOffset(uint64(h))
		for pos > size-1 {
			pos -= uint64(1) << uint64(h)
			h--
			if h < 0 {
				return peaks
			}
		}
		peaks = append(peaks, pos)
	}
	return peaks
}
