package pulse

import "unsafe"

// AsBytes returns a copy of the in-memory representation of values.
// T must not contain pointers.
func AsBytes[T any](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	var zeroT T

	n := int(unsafe.Sizeof(zeroT)) * len(values)
	ptr := (*byte)(unsafe.Pointer(&values[0]))

	buf := make([]byte, n)
	copy(buf, unsafe.Slice(ptr, n))

	return buf
}
