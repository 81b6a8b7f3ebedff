package hexdump

import "unsafe"

// DumpValue renders the raw in-memory bytes of the value at p, aligned at
// offset 0.  Byte order is the machine's.
func DumpValue[T any](p *T) string {
	data := unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
	return FormatAligned(data, 0)
}
