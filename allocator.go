package arena

// Allocator redirects every buffer acquisition and release an arena
// performs, bypassing the compile-time backend entirely. Implementations
// carry their own context in the receiver. The arena borrows the
// allocator: it must stay valid for the arena's whole lifetime.
type Allocator interface {
	// Alloc acquires a buffer of size bytes. A nil buffer with a nil
	// error counts as acquisition failure.
	Alloc(size int) ([]byte, error)
	// Realloc grows a buffer previously returned by Alloc to newSize
	// bytes, in place or by copying len(old) bytes into a fresh buffer.
	Realloc(old []byte, newSize int) ([]byte, error)
	// Free releases a buffer previously returned by Alloc or Realloc.
	Free(buf []byte) error
}
