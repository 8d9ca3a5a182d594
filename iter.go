package bitfield

// State is the value of a single bit produced by an Iter.
type State struct {
	set bool
}

func (b State) IsSet() bool   { return b.set }
func (b State) IsClear() bool { return !b.set }

// Iter walks the bits of a range from the lowest index to the highest. It
// cannot be rewound: build a new one from the view to walk the bits again.
//
//	for it := bitfield.Of(v, bitfield.Full()).Iter(); it.Next(); {
//		fmt.Println(it.Index(), it.Bit().IsSet())
//	}
type Iter[T Word] struct {
	value T
	next  uint
	end   uint
	idx   uint
	bit   State
}

// Iter returns an iterator over the bits of the range.
func (b Bits[T]) Iter() Iter[T] {
	return Iter[T]{value: b.value, next: b.span.Offset, end: b.span.End()}
}

// Next advances to the next bit, reporting false once the range is exhausted.
func (it *Iter[T]) Next() bool {
	if it.next >= it.end {
		return false
	}
	it.idx = it.next
	it.bit = State{set: it.value>>it.idx&1 == 1}
	it.next++
	return true
}

// Index is the bit index of the current bit.
func (it *Iter[T]) Index() uint { return it.idx }

// Bit is the state of the current bit.
func (it *Iter[T]) Bit() State { return it.bit }
