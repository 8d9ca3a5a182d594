//go:build unix

// Package mmio is a register bus over a memory mapped file, such as a device
// node exposing a peripheral's register block.
//
// Loads and stores are single native width, native endian accesses to
// aligned addresses.
package mmio

import (
	"os"
	"unsafe"

	"github.com/zeebo/bitfield"
	"github.com/zeebo/bitfield/register"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"golang.org/x/sys/unix"
)

// File maps size bytes of a file starting at some offset and exposes them as
// B sized registers addressed by byte offset from the start of the region.
type File[B bitfield.Word] struct {
	fh      *os.File
	mapping []byte // page aligned mapping
	regs    []byte // the requested region within mapping
	size    uint64 // bytes per register
}

// Open maps the region [offset, offset+size) of the file at path.
func Open[B bitfield.Word](path string, offset int64, size int) (f *File[B], err error) {
	defer mon.Start().Stop(&err)

	if offset < 0 || size <= 0 {
		return nil, register.Error.New("invalid region %d+%d", offset, size)
	}
	if width := int64(bitfield.Width[B]() / 8); offset%width != 0 {
		return nil, register.Error.New("offset %d not aligned to %d bytes", offset, width)
	}

	fh, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	// mmap offsets must be page aligned, so map from the start of the page
	// and skip the prefix.
	pageSize := int64(unix.Getpagesize())
	base := offset / pageSize * pageSize
	skip := int(offset - base)

	buf, err := unix.Mmap(int(fh.Fd()), base, skip+size,
		unix.PROT_WRITE|unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errs.Combine(errs.Wrap(err), fh.Close())
	}

	return &File[B]{
		fh:      fh,
		mapping: buf,
		regs:    buf[skip : skip+size],
		size:    uint64(bitfield.Width[B]() / 8),
	}, nil
}

func (f *File[B]) ptr(addr uint64) (*B, error) {
	if f.mapping == nil {
		return nil, register.Error.New("mapping closed")
	}
	if addr%f.size != 0 {
		return nil, register.Error.New("address %#x not aligned to %d bytes", addr, f.size)
	}
	if addr > uint64(len(f.regs)) || uint64(len(f.regs))-addr < f.size {
		return nil, register.Error.New("address %#x out of range for %d byte region", addr, len(f.regs))
	}
	return (*B)(unsafe.Pointer(&f.regs[addr])), nil
}

func (f *File[B]) Load(addr uint64) (B, error) {
	p, err := f.ptr(addr)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

func (f *File[B]) Store(addr uint64, raw B) error {
	p, err := f.ptr(addr)
	if err != nil {
		return err
	}
	*p = raw
	return nil
}

// Sync flushes stores to the underlying file.
func (f *File[B]) Sync() (err error) {
	defer mon.Start().Stop(&err)

	if f.mapping == nil {
		return register.Error.New("mapping closed")
	}
	return errs.Wrap(unix.Msync(f.mapping, unix.MS_SYNC))
}

// Close unmaps the region and closes the file.
func (f *File[B]) Close() error {
	if f.mapping == nil {
		return nil
	}
	err := unix.Munmap(f.mapping)
	f.mapping, f.regs = nil, nil
	return errs.Combine(errs.Wrap(err), errs.Wrap(f.fh.Close()))
}
