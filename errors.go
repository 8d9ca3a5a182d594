package bitfield

import "github.com/zeebo/errs"

var (
	// Error is the class of recoverable errors returned by this package, for
	// example when parsing a textual bit range.
	Error = errs.Class("bitfield")

	// OverflowError is the class of panics raised when a bit range does not
	// fit inside the width it is applied to.
	OverflowError = errs.Class("overflow")

	// MaskedWriteError is the class of panics raised by WriteMasked in builds
	// tagged bitfielddebug when the raw value has bits outside the range.
	MaskedWriteError = errs.Class("masked write")
)
