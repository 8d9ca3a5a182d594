// Package field binds named bit fields to the storage words of a host struct.
//
// A field is declared once, as a package level value, with the capability it
// allows. NewRO and FlagRO produce fields that only implement Reader, so
// handing one to Write or Set does not compile. NewRW and Flag produce fields
// that implement Writer as well.
//
//	type Ctrl struct{ Raw uint8 }
//
//	func raw(c *Ctrl) *uint8 { return &c.Raw }
//
//	var (
//		Enable = field.Flag(raw, 0)
//		Mode   = field.NewRW[Ctrl, uint8, uint8](raw, bitfield.Inclusive(1, 2))
//		Level  = field.NewRO[Ctrl, uint8, uint8](raw, bitfield.Inclusive(4, 7))
//	)
//
// Fields that share a word are not checked for overlap.
package field

import (
	"github.com/zeebo/bitfield"
)

// Reader is a field that can be read from a host H as a V.
type Reader[H, V any] interface {
	Read(h *H) V
}

// Writer is a field that can be read from and written to a host H.
type Writer[H, V any] interface {
	Reader[H, V]
	Write(h *H, v V)
}

// Member selects the storage word of a host that a field lives in.
type Member[H any, W bitfield.Word] func(h *H) *W

type binding[H any, W bitfield.Word] struct {
	member Member[H, W]
	span   bitfield.Span
}

func bind[H any, W bitfield.Word](member Member[H, W], r bitfield.Range) binding[H, W] {
	if member == nil {
		panic("field: nil member")
	}
	return binding[H, W]{member: member, span: r.Span(bitfield.Width[W]())}
}

func (b binding[H, W]) raw(h *H) W {
	return bitfield.OfSpan(*b.member(h), b.span).Read()
}

func (b binding[H, W]) put(h *H, raw W) {
	p := b.member(h)
	*p = bitfield.OfSpan(*p, b.span).Write(raw)
}

// RO is a read only field of V stored in the bits of a W inside an H.
type RO[H any, W bitfield.Word, V any] struct {
	b      binding[H, W]
	decode func(W) V
}

// RW is a field of V stored in the bits of a W inside an H that can be read
// and written.
type RW[H any, W bitfield.Word, V any] struct {
	RO[H, W, V]
	encode func(V) W
}

// NewRO declares a read only integer field using numeric conversion. It
// panics with a bitfield.OverflowError if r does not fit W.
func NewRO[H any, W bitfield.Word, V Integer](member Member[H, W], r bitfield.Range) RO[H, W, V] {
	return NewROWith(member, r, Numeric[W, V]())
}

// NewRW declares a read write integer field using numeric conversion. It
// panics with a bitfield.OverflowError if r does not fit W.
func NewRW[H any, W bitfield.Word, V Integer](member Member[H, W], r bitfield.Range) RW[H, W, V] {
	return NewRWWith(member, r, Numeric[W, V]())
}

// NewROWith declares a read only field decoded with c. Only c.Decode is used.
func NewROWith[H any, W bitfield.Word, V any](member Member[H, W], r bitfield.Range, c Converter[W, V]) RO[H, W, V] {
	if c.Decode == nil {
		panic("field: converter has no decoder")
	}
	return RO[H, W, V]{b: bind(member, r), decode: c.Decode}
}

// NewRWWith declares a read write field converted with c.
func NewRWWith[H any, W bitfield.Word, V any](member Member[H, W], r bitfield.Range, c Converter[W, V]) RW[H, W, V] {
	if c.Encode == nil {
		panic("field: converter has no encoder")
	}
	return RW[H, W, V]{RO: NewROWith(member, r, c), encode: c.Encode}
}

// Flag declares a read write boolean field on bit i.
func Flag[H any, W bitfield.Word](member Member[H, W], i uint) RW[H, W, bool] {
	return NewRWWith(member, bitfield.Bit(i), Boolean[W]())
}

// FlagRO declares a read only boolean field on bit i.
func FlagRO[H any, W bitfield.Word](member Member[H, W], i uint) RO[H, W, bool] {
	return NewROWith(member, bitfield.Bit(i), Boolean[W]())
}

// Span is the bits of the word the field occupies.
func (f RO[H, W, V]) Span() bitfield.Span { return f.b.span }

// Raw returns the undecoded bits of the field.
func (f RO[H, W, V]) Raw(h *H) W { return f.b.raw(h) }

// Read decodes the field from h.
func (f RO[H, W, V]) Read(h *H) V { return f.decode(f.b.raw(h)) }

// Write encodes v into the field in h. Bits of the encoded value that do not
// fit the field are dropped and the rest of the word is left untouched.
func (f RW[H, W, V]) Write(h *H, v V) { f.b.put(h, f.encode(v)) }

// ReadOnly returns the field with its write capability removed.
func (f RW[H, W, V]) ReadOnly() RO[H, W, V] { return f.RO }
