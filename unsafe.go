package flatxml

import "unsafe"

// unsafeString performs an _unsafe_ no-copy string conversion from buf.
// https://github.com/golang/go/issues/25484 has more info on this.
//
// Every Name/Value field the engine emits is produced this way: the
// caller's input []byte must stay alive and unmodified for as long as
// any Node referencing it is in use.
func unsafeString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}
