package arena

import (
	"unsafe"

	"github.com/memkit/arena/internal/assert"
)

// regionHeader is the bookkeeping block reserved at the front of every
// region's backing buffer. The live fields sit in the Region struct; the
// reservation keeps the buffer layout header-then-payload so sizing
// arithmetic counts the header against the buffer, not the chunk.
type regionHeader struct {
	regionLen uintptr
	chunkLen  uintptr
	chunk     uintptr
	offset    uintptr
	next      uintptr
}

// headerSize is the space a region reserves for its header.
const headerSize = int(unsafe.Sizeof(regionHeader{}))

// Region is one contiguous backing buffer: a header reservation at the
// forward-aligned front, then a payload chunk handed out by bump
// allocation. A region never releases its own buffer; whichever mechanism
// acquired the buffer releases it.
type Region struct {
	buf    []byte // whole backing buffer, header reservation included
	chunk  []byte // payload view into buf
	offset int    // bump cursor within chunk, monotonic between resets
}

// NewRegion lays a region out over buf: the header reservation starts at
// the first aligned address, the chunk at the next aligned address after
// it. A buffer too small to hold the header plus a chunk is a programmer
// error and panics.
func NewRegion(buf []byte) *Region {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	end := base + uintptr(len(buf))
	hdrStart := alignForward(base, uintptr(DefaultAlignment))
	chunkStart := alignForward(hdrStart+uintptr(headerSize), uintptr(DefaultAlignment))
	assert.That(chunkStart <= end, "%d-byte buffer cannot hold a region header", len(buf))

	return &Region{
		buf:   buf,
		chunk: buf[chunkStart-base:],
	}
}

// RegionLen returns the total backing-buffer size, header included.
func (r *Region) RegionLen() int {
	return len(r.buf)
}

// ChunkLen returns the payload capacity in bytes.
func (r *Region) ChunkLen() int {
	return len(r.chunk)
}

// Available returns the bytes left in the chunk, ignoring the alignment
// cost a specific allocation would pay.
func (r *Region) Available() int {
	return len(r.chunk) - r.offset
}

// AvailableForAlignment returns the bytes left after forward-aligning the
// bump cursor, or 0 if aligning would pass the end of the chunk.
func (r *Region) AvailableForAlignment(alignment int) int {
	if len(r.chunk) == 0 {
		return 0
	}
	start := r.base()
	end := start + uintptr(len(r.chunk))
	aligned := alignForward(start+uintptr(r.offset), uintptr(alignment))
	if aligned >= end {
		return 0
	}
	return int(end - aligned)
}

// AllocAlign returns a size-byte block whose base address is a multiple of
// alignment, advancing the bump cursor past it. The cursor only moves
// forward; reset is the one way back. ErrInsufficientSpace means the
// request does not fit in this region — the arena treats that as a cue to
// try the next one, not as failure. Returns nil for size <= 0.
func (r *Region) AllocAlign(size, alignment int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	if size > r.AvailableForAlignment(alignment) {
		return nil, ErrInsufficientSpace
	}

	start := r.base()
	aligned := alignForward(start+uintptr(r.offset), uintptr(alignment))
	off := int(aligned - start)
	r.offset = off + size
	return r.chunk[off:r.offset:r.offset], nil
}

// CallocAlign is AllocAlign with the returned block zero-filled.
func (r *Region) CallocAlign(size, alignment int) ([]byte, error) {
	b, err := r.AllocAlign(size, alignment)
	if err == nil {
		clear(b)
	}
	return b, err
}

// ReallocAlign grows old into a fresh block, copying its contents forward;
// the original block stays reserved in place. Shrinking is a no-op that
// returns old unchanged.
func (r *Region) ReallocAlign(old []byte, newSize, alignment int) ([]byte, error) {
	if newSize <= len(old) {
		return old, nil
	}
	b, err := r.AllocAlign(newSize, alignment)
	if err != nil {
		return nil, err
	}
	copy(b, old)
	return b, nil
}

// reset rewinds the bump cursor to the chunk start.
func (r *Region) reset() {
	r.offset = 0
}

func (r *Region) base() uintptr {
	if len(r.chunk) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(r.chunk)))
}
