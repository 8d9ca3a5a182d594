package field

// Read reads the field f out of h.
func Read[H, V any](h *H, f Reader[H, V]) V { return f.Read(h) }

// TryRead reads the field f out of h, returning an error if its bits do not
// decode.
func TryRead[H, V any](h *H, f TryReader[H, V]) (V, error) { return f.TryRead(h) }

// Output reads the field f out of h into out and returns h so reads can be
// chained.
func Output[H, V any](h *H, f Reader[H, V], out *V) *H {
	*out = f.Read(h)
	return h
}

// Write writes v into the field f of h and returns h so writes can be
// chained.
func Write[H, V any](h *H, f Writer[H, V], v V) *H {
	f.Write(h, v)
	return h
}

// Op is a pending write to a host.
type Op[H any] func(h *H)

// Set returns an Op writing v into the field f.
func Set[H, V any](f Writer[H, V], v V) Op[H] {
	return func(h *H) { f.Write(h, v) }
}

// Apply runs the ops against h in order and returns h. It is used to change
// several fields of a register before it is flushed once.
func Apply[H any](h *H, ops ...Op[H]) *H {
	for _, op := range ops {
		op(h)
	}
	return h
}
