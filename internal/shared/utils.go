// Package shared holds small helpers used by more than one client package.
package shared

// WipeByteArray overwrites b with zeros. Use it on passwords once they have
// been sent.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
