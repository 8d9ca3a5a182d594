package bitfield

// Bits is a view of a bit range inside a value. Every operation returns a
// new value rather than modifying the view, so the result has to be assigned
// back explicitly:
//
//	reg = bitfield.Of(reg, bitfield.Inclusive(4, 7)).Write(0x1)
type Bits[T Word] struct {
	value T
	span  Span
	mask  T
}

// Of returns a view of the bits r of value. It panics with an OverflowError if
// r does not fit T.
func Of[T Word](value T, r Range) Bits[T] {
	return OfSpan(value, r.Span(Width[T]()))
}

// OfSpan returns a view of the bits s of value. It panics with an
// OverflowError if s does not fit T.
func OfSpan[T Word](value T, s Span) Bits[T] {
	return Bits[T]{value: value, span: s, mask: Mask[T](s)}
}

func (b Bits[T]) Value() T   { return b.value }
func (b Bits[T]) Span() Span { return b.span }
func (b Bits[T]) Mask() T    { return b.mask }

// Read returns the bits of the range shifted down to bit zero.
func (b Bits[T]) Read() T { return b.value & b.mask >> b.span.Offset }

// Write returns the value with the range replaced by the low bits of x. Bits
// of x that do not fit the range are dropped and bits outside the range are
// preserved.
func (b Bits[T]) Write(x T) T { return b.value&^b.mask | x<<b.span.Offset&b.mask }

// WriteMasked returns the value with the range replaced by raw, which must
// already be shifted into position and have no bits outside the range. Builds
// tagged bitfielddebug check that and panic with a MaskedWriteError.
func (b Bits[T]) WriteMasked(raw T) T {
	if debug && raw&^b.mask != 0 {
		panic(MaskedWriteError.New("value %#x exceeds mask %#x", uint64(raw), uint64(b.mask)))
	}
	return b.value&^b.mask | raw
}

func (b Bits[T]) Set() T    { return b.value | b.mask }
func (b Bits[T]) Clear() T  { return b.value &^ b.mask }
func (b Bits[T]) Revert() T { return b.value ^ b.mask }

// IsSet reports whether every bit in the range is one.
func (b Bits[T]) IsSet() bool { return b.value&b.mask == b.mask }

// IsClear reports whether every bit in the range is zero.
func (b Bits[T]) IsClear() bool { return b.Read() == 0 }

// CountOnes returns the number of one bits in the range.
func (b Bits[T]) CountOnes() uint { return CountOnes(b.Read()) }

//
// one shot helpers
//

func Read[T Word](v T, r Range) T          { return Of(v, r).Read() }
func Write[T Word](v T, r Range, x T) T    { return Of(v, r).Write(x) }
func Set[T Word](v T, r Range) T           { return Of(v, r).Set() }
func Clear[T Word](v T, r Range) T         { return Of(v, r).Clear() }
func Revert[T Word](v T, r Range) T        { return Of(v, r).Revert() }
func IsSet[T Word](v T, r Range) bool      { return Of(v, r).IsSet() }
func IsClear[T Word](v T, r Range) bool    { return Of(v, r).IsClear() }
func CountRange[T Word](v T, r Range) uint { return Of(v, r).CountOnes() }
