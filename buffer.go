package flatxml

// Buffer accumulates emitted Nodes into a single growable slice — the
// "one allocation" mode spec.md §5/§9 describes as the only storage
// strategy this core endorses, because appending to one slice keeps
// cache locality and avoids a per-node heap allocation a pointer-tree
// DOM would pay. Reallocation of Nodes (on append growth) invalidates
// any SiblingIter/AttrIter built against a previous backing array, so
// callers should only navigate a Buffer after the parse that filled it
// has finished.
type Buffer struct {
	Nodes []Node
}

// Append is a Callback suitable for Parse: it grows Nodes by one
// record per call.
func (b *Buffer) Append(n Node) {
	b.Nodes = append(b.Nodes, n)
}

// Reset empties the buffer for reuse without releasing its backing
// array.
func (b *Buffer) Reset() {
	b.Nodes = b.Nodes[:0]
}

// ParseInto runs Parse with a context-free callback that appends every
// record to buf, returning the same (State, offset) pair Parse would.
// This is the common case of "one allocation" mode: one call builds a
// fully navigable buffer with exactly one growing slice.
func ParseInto(input []byte, buf *Buffer, opts ...Option) (State, int) {
	return Parse(input, buf, func(b *Buffer, n Node) {
		b.Append(n)
	}, opts...)
}
