// Package register connects bit field hosts to the bus that holds their raw
// bits.
//
// A Register knows its address on a bus and how to turn raw bits into its
// cached form and back. A Bus moves raw bits to and from addresses. Cache
// reads a register into its cached form, the caller edits the cached form
// with field accessors, and Flush writes it back.
//
// Neither Bank nor the mmio transport is safe for concurrent use.
package register

import (
	"github.com/zeebo/bitfield"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
)

// Error is the class of errors returned by register transports.
var Error = errs.Class("register")

// Register describes a register holding B bits whose cached form is a C.
type Register[B bitfield.Word, C any] interface {
	// Address is where the register lives on its bus.
	Address() uint64

	// FromRaw converts raw bits to the cached form. The caller guarantees
	// the bits are a valid encoding.
	FromRaw(raw B) C

	// ToRaw converts the cached form back to raw bits.
	ToRaw(c C) B
}

// Bus moves the raw bits of B sized registers.
type Bus[B bitfield.Word] interface {
	Load(addr uint64) (B, error)
	Store(addr uint64, raw B) error
}

// Raw is a register at the given address whose cached form is its raw bits.
type Raw[B bitfield.Word] uint64

func (r Raw[B]) Address() uint64 { return uint64(r) }
func (Raw[B]) FromRaw(raw B) B   { return raw }
func (Raw[B]) ToRaw(c B) B       { return c }

// Cache loads reg from the bus.
func Cache[B bitfield.Word, C any](bus Bus[B], reg Register[B, C]) (c C, err error) {
	defer mon.Start().Stop(&err)

	raw, err := bus.Load(reg.Address())
	if err != nil {
		return c, errs.Wrap(err)
	}
	return reg.FromRaw(raw), nil
}

// Flush stores the cached form c of reg to the bus.
func Flush[B bitfield.Word, C any](bus Bus[B], reg Register[B, C], c C) (err error) {
	defer mon.Start().Stop(&err)

	return errs.Wrap(bus.Store(reg.Address(), reg.ToRaw(c)))
}

// Update caches reg, calls fn to modify it, and flushes it once.
func Update[B bitfield.Word, C any](bus Bus[B], reg Register[B, C], fn func(c *C)) (err error) {
	defer mon.Start().Stop(&err)

	c, err := Cache(bus, reg)
	if err != nil {
		return err
	}
	fn(&c)
	return Flush(bus, reg, c)
}
