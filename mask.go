package bitfield

import (
	"math/bits"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Word is the set of unsigned integer kinds a bit range can be applied to.
// 128-bit values use uint128.Uint128 and the *128 functions instead.
type Word interface {
	constraints.Unsigned
}

// Width returns the number of bits in T.
func Width[T Word]() uint { return uint(bits.Len64(uint64(^T(0)))) }

// checkedShl shifts x left by n, reporting false if n is not less than the
// width of T.
func checkedShl[T Word](x T, n uint) (T, bool) {
	if n >= Width[T]() {
		return 0, false
	}
	return x << n, true
}

// Ones returns a value with the low n bits set. When n is the full width,
// 1<<n overflows to zero and the subtraction wraps around to all ones.
func Ones[T Word](n uint) T {
	p, _ := checkedShl(T(1), n)
	return p - 1
}

// Mask returns a value with exactly the bits of s set. It panics with an
// OverflowError if s does not fit T.
func Mask[T Word](s Span) T {
	if s.Length == 0 || s.End() > Width[T]() || s.End() < s.Offset {
		panic(OverflowError.New("span %d+%d of a %d-bit value", s.Offset, s.Length, Width[T]()))
	}
	return Ones[T](s.Length) << s.Offset
}

// Ones128 is Ones for 128-bit values.
func Ones128(n uint) uint128.Uint128 {
	if n >= 128 {
		return uint128.Max
	}
	return uint128.From64(1).Lsh(n).SubWrap64(1)
}

// Mask128 is Mask for 128-bit values.
func Mask128(s Span) uint128.Uint128 {
	if s.Length == 0 || s.End() > 128 || s.End() < s.Offset {
		panic(OverflowError.New("span %d+%d of a 128-bit value", s.Offset, s.Length))
	}
	return Ones128(s.Length).Lsh(s.Offset)
}
