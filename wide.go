package bitfield

import "lukechampine.com/uint128"

// Bits128 is Bits for 128-bit values, which Go has no native integer for.
type Bits128 struct {
	value uint128.Uint128
	span  Span
	mask  uint128.Uint128
}

// Of128 returns a view of the bits r of value. It panics with an
// OverflowError if r does not fit 128 bits.
func Of128(value uint128.Uint128, r Range) Bits128 {
	s := r.Span(128)
	return Bits128{value: value, span: s, mask: Mask128(s)}
}

func (b Bits128) Value() uint128.Uint128 { return b.value }
func (b Bits128) Span() Span             { return b.span }
func (b Bits128) Mask() uint128.Uint128  { return b.mask }

func (b Bits128) Read() uint128.Uint128 { return b.value.And(b.mask).Rsh(b.span.Offset) }

func (b Bits128) Write(x uint128.Uint128) uint128.Uint128 {
	return b.Clear().Or(x.Lsh(b.span.Offset).And(b.mask))
}

func (b Bits128) WriteMasked(raw uint128.Uint128) uint128.Uint128 {
	if debug && !raw.And(b.mask.Xor(uint128.Max)).IsZero() {
		panic(MaskedWriteError.New("value %s exceeds mask %s", raw, b.mask))
	}
	return b.Clear().Or(raw)
}

func (b Bits128) Set() uint128.Uint128    { return b.value.Or(b.mask) }
func (b Bits128) Clear() uint128.Uint128  { return b.value.And(b.mask.Xor(uint128.Max)) }
func (b Bits128) Revert() uint128.Uint128 { return b.value.Xor(b.mask) }
func (b Bits128) IsSet() bool             { return b.value.And(b.mask).Equals(b.mask) }
func (b Bits128) IsClear() bool           { return b.value.And(b.mask).IsZero() }
func (b Bits128) CountOnes() uint         { return CountOnes128(b.Read()) }

// Iter returns an iterator over the bits of the range.
func (b Bits128) Iter() Iter128 {
	return Iter128{value: b.value, next: b.span.Offset, end: b.span.End()}
}

// Iter128 is Iter for 128-bit values.
type Iter128 struct {
	value uint128.Uint128
	next  uint
	end   uint
	idx   uint
	bit   State
}

func (it *Iter128) Next() bool {
	if it.next >= it.end {
		return false
	}
	it.idx = it.next
	it.bit = State{set: it.value.Rsh(it.idx).Lo&1 == 1}
	it.next++
	return true
}

func (it *Iter128) Index() uint { return it.idx }
func (it *Iter128) Bit() State  { return it.bit }
