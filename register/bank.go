package register

import (
	"encoding/binary"

	"github.com/zeebo/bitfield"
)

// Bank is an in memory register file of little endian B sized registers,
// addressed by byte offset.
type Bank[B bitfield.Word] struct {
	buf  []byte
	size uint64 // bytes per register
}

// NewBank returns a Bank backed by buf.
func NewBank[B bitfield.Word](buf []byte) *Bank[B] {
	return &Bank[B]{buf: buf, size: uint64(bitfield.Width[B]() / 8)}
}

// Len is the size of the bank in bytes.
func (b *Bank[B]) Len() int { return len(b.buf) }

// Bytes returns the backing buffer.
func (b *Bank[B]) Bytes() []byte { return b.buf }

func (b *Bank[B]) check(addr uint64) error {
	if addr > uint64(len(b.buf)) || uint64(len(b.buf))-addr < b.size {
		return Error.New("address %#x out of range for %d byte bank", addr, len(b.buf))
	}
	return nil
}

func (b *Bank[B]) rawRead(n uint64) uint64 {
	var tmp [8]byte
	copy(tmp[:], b.buf[n:n+b.size])
	return binary.LittleEndian.Uint64(tmp[:])
}

func (b *Bank[B]) rawWrite(n uint64, val uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], val)
	copy(b.buf[n:n+b.size], tmp[:])
}

func (b *Bank[B]) Load(addr uint64) (B, error) {
	if err := b.check(addr); err != nil {
		return 0, err
	}
	return B(b.rawRead(addr)), nil
}

func (b *Bank[B]) Store(addr uint64, raw B) error {
	if err := b.check(addr); err != nil {
		return err
	}
	b.rawWrite(addr, uint64(raw))
	return nil
}
