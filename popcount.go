package bitfield

import "lukechampine.com/uint128"

// CountOnes returns the number of one bits in v. It counts pairs of bits in
// parallel, then merges the pair counts into nibble counts, then bytes, and
// so on, doubling the group width until a single group spans the value.
func CountOnes[T Word](v T) uint {
	width, max := Width[T](), ^T(0)
	for i := uint(1); i <= width/2; i <<= 1 {
		a := max / (T(1)<<i + 1) // 0b0101..., 0b0011..., 0b00001111...
		b := a << i
		v = v&a + (v&b)>>i
	}
	return uint(v)
}

// swar128 holds the group masks CountOnes128 uses for i = 1, 2, 4, ... 64.
var swar128 = func() (masks [7]uint128.Uint128) {
	for n := range masks {
		i := uint(1) << n
		masks[n] = uint128.Max.Div(uint128.From64(1).Lsh(i).Add64(1))
	}
	return masks
}()

// CountOnes128 is CountOnes for 128-bit values.
func CountOnes128(v uint128.Uint128) uint {
	for n, a := range swar128 {
		i := uint(1) << n
		b := a.Lsh(i)
		v = v.And(a).Add(v.And(b).Rsh(i))
	}
	return uint(v.Lo)
}
