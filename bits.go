package mmr

import "math/bits"

// bitLength64 is the number of bits required to represent num, ie 1 +
// floor(log2(num)). bitLength64(0) is 0.
func bitLength64(num uint64) uint64 {
	return uint64(bits.Len64(num))
}

// allOnes reports whether num is of the form 2^k - 1, ie every bit up to its
// highest set bit is 1. This is the left-spine marker used throughout the
// position arithmetic: a 1-based position is a perfect peak root exactly
// when it is all-ones.
func allOnes(num uint64) bool {
	return (uint64(1)<<bits.OnesCount64(num) - 1) == num
}
