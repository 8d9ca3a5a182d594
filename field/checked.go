package field

import (
	"github.com/zeebo/bitfield"
	"github.com/zeebo/errs"
)

// ConversionError is the class of errors for raw bits that do not decode to
// a valid value.
var ConversionError = errs.Class("conversion")

// TryReader is a field whose decoding can fail.
type TryReader[H, V any] interface {
	TryRead(h *H) (V, error)
}

// TryConverter is a Converter whose decoder can fail.
type TryConverter[W bitfield.Word, V any] struct {
	Decode func(raw W) (V, error)
	Encode func(v V) W
}

// CheckedRO is a read only field whose raw bits may not decode.
type CheckedRO[H any, W bitfield.Word, V any] struct {
	b      binding[H, W]
	decode func(W) (V, error)
}

// CheckedRW is a read write field whose raw bits may not decode.
type CheckedRW[H any, W bitfield.Word, V any] struct {
	CheckedRO[H, W, V]
	encode func(V) W
}

// NewCheckedRO declares a read only field with a fallible decoder.
func NewCheckedRO[H any, W bitfield.Word, V any](member Member[H, W], r bitfield.Range, c TryConverter[W, V]) CheckedRO[H, W, V] {
	if c.Decode == nil {
		panic("field: converter has no decoder")
	}
	return CheckedRO[H, W, V]{b: bind(member, r), decode: c.Decode}
}

// NewCheckedRW declares a read write field with a fallible decoder.
func NewCheckedRW[H any, W bitfield.Word, V any](member Member[H, W], r bitfield.Range, c TryConverter[W, V]) CheckedRW[H, W, V] {
	if c.Encode == nil {
		panic("field: converter has no encoder")
	}
	return CheckedRW[H, W, V]{CheckedRO: NewCheckedRO(member, r, c), encode: c.Encode}
}

func (f CheckedRO[H, W, V]) Span() bitfield.Span { return f.b.span }
func (f CheckedRO[H, W, V]) Raw(h *H) W          { return f.b.raw(h) }

// TryRead decodes the field, returning a ConversionError if the raw bits are
// not a valid encoding.
func (f CheckedRO[H, W, V]) TryRead(h *H) (V, error) {
	raw := f.b.raw(h)
	v, err := f.decode(raw)
	if err != nil {
		if !ConversionError.Has(err) {
			err = ConversionError.Wrap(err)
		}
		return v, err
	}
	return v, nil
}

// Read decodes the field and panics if the raw bits are not a valid encoding.
func (f CheckedRO[H, W, V]) Read(h *H) V {
	v, err := f.TryRead(h)
	if err != nil {
		panic(err)
	}
	return v
}

func (f CheckedRW[H, W, V]) Write(h *H, v V) { f.b.put(h, f.encode(v)) }
