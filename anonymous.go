package bitfield

// HasAll reports whether every bit of r is set in v.
func HasAll[T Word](v T, r Range) bool {
	m := Mask[T](r.Span(Width[T]()))
	return v&m == m
}

// HasAny reports whether at least one bit of r is set in v.
func HasAny[T Word](v T, r Range) bool {
	return v&Mask[T](r.Span(Width[T]())) != 0
}

// HasNone reports whether no bit of r is set in v.
//
// Older revisions of this package exported this test under the name has_any.
// It is kept as HasNone for callers that depended on that behavior.
func HasNone[T Word](v T, r Range) bool {
	return v&Mask[T](r.Span(Width[T]())) == 0
}
