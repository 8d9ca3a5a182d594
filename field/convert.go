package field

import (
	"github.com/zeebo/bitfield"
	"golang.org/x/exp/constraints"
)

// Integer is the set of value types that convert to and from raw bits
// numerically.
type Integer interface {
	constraints.Integer
}

// Converter maps between the raw bits of a field and its value.
type Converter[W bitfield.Word, V any] struct {
	Decode func(raw W) V
	Encode func(v V) W
}

// WithDecode returns c with its decoder replaced.
func (c Converter[W, V]) WithDecode(fn func(raw W) V) Converter[W, V] {
	c.Decode = fn
	return c
}

// WithEncode returns c with its encoder replaced.
func (c Converter[W, V]) WithEncode(fn func(v V) W) Converter[W, V] {
	c.Encode = fn
	return c
}

// Numeric converts with plain integer conversions, widening or truncating as
// the types require.
func Numeric[W bitfield.Word, V Integer]() Converter[W, V] {
	return Converter[W, V]{
		Decode: func(raw W) V { return V(raw) },
		Encode: func(v V) W { return W(v) },
	}
}

// Boolean decodes a raw 1 as true and anything else as false, and encodes
// true as 1 and false as 0.
func Boolean[W bitfield.Word]() Converter[W, bool] {
	return Converter[W, bool]{
		Decode: func(raw W) bool { return raw == 1 },
		Encode: func(v bool) W {
			if v {
				return 1
			}
			return 0
		},
	}
}
