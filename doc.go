// Package flatxml is a zero-copy, single-pass XML 1.0 parser.
//
// It scans an immutable []byte once, emitting a flat stream of Node
// records (Element, Attr, Comment, PI, Text, EndElement) through a
// caller-supplied callback. No record owns its own string data: every
// Name and Value is a sub-slice of the original input. Callers that
// want a navigable tree accumulate the callback's Nodes into a Buffer
// and walk it with Children/Attrs instead of building a pointer-based
// DOM.
package flatxml
