package bitfield

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// Select returns the index of the nth one bit of v, counting from zero at the
// least significant bit. It reports false if v has n or fewer one bits.
//
// CountRange is the matching rank operation.
func Select[T Word](v T, n uint) (uint, bool) {
	if CountOnes(v) <= n {
		return 0, false
	}

	// the answer is always in the low 2*w bits of v. pop off the low half
	// whenever it holds no more than n ones.
	var acc uint
	for w := Width[T]() / 2; w >= 8; w /= 2 {
		if count := CountOnes(v & Ones[T](w)); count <= n {
			acc += w
			v >>= w
			n -= count
		}
	}

	// clear off the n lowest order one bits
	for ; n > 0; n-- {
		v &= v - 1
	}

	return acc + uint(bits.TrailingZeros64(uint64(v))), true
}

// Select128 is Select for 128-bit values.
func Select128(v uint128.Uint128, n uint) (uint, bool) {
	if count := CountOnes(v.Lo); count <= n {
		i, ok := Select(v.Hi, n-count)
		if !ok {
			return 0, false
		}
		return 64 + i, true
	}
	return Select(v.Lo, n)
}
