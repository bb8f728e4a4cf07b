package arena

import "github.com/memkit/arena/internal/assert"

// AlignSize returns the smallest multiple of alignment that is >= size.
// An alignment of zero leaves size unchanged. Alignment must be a power of
// two; anything else is a programmer error and panics.
func AlignSize(size, alignment uintptr) uintptr {
	assert.That(isPowerOfTwo(alignment), "alignment %d is not a power of two", alignment)
	if alignment == 0 {
		return size
	}
	rem := size & (alignment - 1)
	if rem == 0 {
		return size
	}
	return size + alignment - rem
}

// alignForward returns the smallest address >= addr that is a multiple of
// alignment.
func alignForward(addr, alignment uintptr) uintptr {
	assert.That(isPowerOfTwo(alignment), "alignment %d is not a power of two", alignment)
	if alignment == 0 {
		return addr
	}
	rem := addr & (alignment - 1)
	if rem == 0 {
		return addr
	}
	return addr + alignment - rem
}

// isPowerOfTwo reports whether x is a power of two. Zero passes, so the
// alignment-zero no-op path reaches the callers that handle it.
func isPowerOfTwo(x uintptr) bool {
	return x&(x-1) == 0
}

// isAlignedTo reports whether addr is a multiple of alignment.
func isAlignedTo(addr, alignment uintptr) bool {
	assert.That(isPowerOfTwo(alignment), "alignment %d is not a power of two", alignment)
	if alignment == 0 {
		return true
	}
	return addr&(alignment-1) == 0
}
