package bitfield

import (
	"strconv"
	"strings"
)

// BoundKind says how a Bound limits one end of a Range.
type BoundKind uint8

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Value uint
}

// Range is an unnormalized bit range. It only becomes an offset and length
// once it is applied to a width with Span, which is where open ends are
// resolved and overflow is detected.
type Range struct {
	Low, High Bound
}

// Bit is the single bit i, like i..=i.
func Bit(i uint) Range { return Range{Bound{Included, i}, Bound{Included, i}} }

// Between is the half-open range a..b.
func Between(a, b uint) Range { return Range{Bound{Included, a}, Bound{Excluded, b}} }

// Inclusive is the range a..=b.
func Inclusive(a, b uint) Range { return Range{Bound{Included, a}, Bound{Included, b}} }

// From is the range a.., running to the top of the width.
func From(a uint) Range { return Range{Bound{Included, a}, Bound{}} }

// To is the range ..b.
func To(b uint) Range { return Range{Bound{}, Bound{Excluded, b}} }

// Through is the range ..=b.
func Through(b uint) Range { return Range{Bound{}, Bound{Included, b}} }

// Full is the range .., covering every bit of the width.
func Full() Range { return Range{} }

// At is the range of length bits starting at offset.
func At(offset, length uint) Range { return Between(offset, offset+length) }

// Span is a normalized Range: Length bits starting at bit Offset.
type Span struct {
	Offset uint
	Length uint
}

// End is the exclusive upper bit index of the span.
func (s Span) End() uint { return s.Offset + s.Length }

// Range converts the span back into an equivalent Range.
func (s Span) Range() Range { return At(s.Offset, s.Length) }

// Check normalizes the range against a width in bits, returning an
// OverflowError if the range is empty, inverted or runs past the width.
func (r Range) Check(width uint) (Span, error) {
	var lo uint
	switch r.Low.Kind {
	case Included:
		lo = r.Low.Value
	case Excluded:
		lo = r.Low.Value + 1
		if lo == 0 {
			return Span{}, OverflowError.New("bits %s of a %d-bit value", r, width)
		}
	}

	// end is exclusive
	end := width
	switch r.High.Kind {
	case Included:
		end = r.High.Value + 1
		if end == 0 {
			return Span{}, OverflowError.New("bits %s of a %d-bit value", r, width)
		}
	case Excluded:
		end = r.High.Value
	}

	if end <= lo || end > width {
		return Span{}, OverflowError.New("bits %s of a %d-bit value", r, width)
	}
	return Span{Offset: lo, Length: end - lo}, nil
}

// Span normalizes the range against a width in bits. It panics with an
// OverflowError if the range does not fit.
func (r Range) Span(width uint) Span {
	s, err := r.Check(width)
	if err != nil {
		panic(err)
	}
	return s
}

// String formats the range the way ParseRange accepts it.
func (r Range) String() string {
	if r.Low.Kind == Included && r.High.Kind == Included && r.Low.Value == r.High.Value {
		return strconv.FormatUint(uint64(r.Low.Value), 10)
	}

	var b strings.Builder
	switch r.Low.Kind {
	case Included:
		b.WriteString(strconv.FormatUint(uint64(r.Low.Value), 10))
	case Excluded:
		b.WriteString(strconv.FormatUint(uint64(r.Low.Value+1), 10))
	}
	b.WriteString("..")
	switch r.High.Kind {
	case Included:
		b.WriteByte('=')
		b.WriteString(strconv.FormatUint(uint64(r.High.Value), 10))
	case Excluded:
		b.WriteString(strconv.FormatUint(uint64(r.High.Value), 10))
	}
	return b.String()
}

// ParseRange parses the textual forms "i", "a..b", "a..=b", "a..", "..b",
// "..=b" and "..".
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	lo, hi, found := strings.Cut(s, "..")
	if !found {
		i, err := parseIndex(s)
		if err != nil {
			return Range{}, err
		}
		return Bit(i), nil
	}

	var r Range
	if lo != "" {
		a, err := parseIndex(lo)
		if err != nil {
			return Range{}, err
		}
		r.Low = Bound{Included, a}
	}

	kind := Excluded
	if strings.HasPrefix(hi, "=") {
		kind, hi = Included, hi[1:]
		if hi == "" {
			return Range{}, Error.New("range %q: missing end after ..=", s)
		}
	}
	if hi != "" {
		b, err := parseIndex(hi)
		if err != nil {
			return Range{}, err
		}
		r.High = Bound{kind, b}
	}

	return r, nil
}

func parseIndex(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, Error.New("invalid bit index %q", s)
	}
	return uint(v), nil
}
