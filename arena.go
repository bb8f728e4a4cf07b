package arena

import (
	"errors"
	"fmt"
	"os"
	"unsafe"
)

// DefaultAlignment is the alignment applied by the convenience wrappers:
// natural pointer alignment for the target architecture.
const DefaultAlignment = int(unsafe.Sizeof(uintptr(0)))

// DefaultFactor scales the OS page size into the default payload target
// for new regions (16 pages, 64 KiB with 4 KiB pages).
const DefaultFactor = 16

var (
	// ErrOutOfMemory is returned when the backend or the pluggable
	// allocator cannot provide a backing buffer. The arena is left in
	// its pre-call state.
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrInsufficientSpace is returned by Region allocation when the
	// request does not fit in the remaining chunk space. The Arena
	// routes around it by scanning forward or appending a region.
	ErrInsufficientSpace = errors.New("arena: insufficient space in region")
)

// Arena is a bump allocator over an ordered, append-only chain of regions.
// It grows the chain on demand and owns every region in it. Not
// goroutine-safe: share an arena across goroutines only behind external
// serialization, or give each goroutine its own.
type Arena struct {
	regions   []*Region
	active    int       // forward-only cursor into regions
	alloc     Allocator // optional, borrowed; nil selects the compile-time backend
	destroyed bool
}

// NewArena creates an arena with an empty region chain; the chain grows on
// the first allocation. A nil allocator selects the compile-time OS
// backend. A non-nil allocator handles every buffer the arena acquires and
// must outlive the arena.
func NewArena(alloc Allocator) *Arena {
	return &Arena{alloc: alloc}
}

// AllocAlign returns a size-byte block whose base address is a multiple of
// alignment. The region cursor walks forward past regions that cannot
// satisfy the request and never returns to them until FreeAll; if the
// structurally last region also lacks room, a fresh region sized for the
// request is appended. A growth failure returns ErrOutOfMemory and leaves
// the chain and cursor exactly as they were. Returns nil for size <= 0.
func (a *Arena) AllocAlign(size, alignment int) ([]byte, error) {
	a.panicIfDestroyed()
	if size <= 0 {
		return nil, nil
	}

	if len(a.regions) == 0 {
		if err := a.appendRegion(size); err != nil {
			return nil, err
		}
	}

	for a.active < len(a.regions)-1 {
		if a.regions[a.active].AvailableForAlignment(alignment) >= size {
			break
		}
		a.active++
	}

	if a.regions[a.active].AvailableForAlignment(alignment) < size {
		if err := a.appendRegion(size); err != nil {
			return nil, err
		}
		a.active = len(a.regions) - 1
	}

	return a.regions[a.active].AllocAlign(size, alignment)
}

// Alloc is AllocAlign at DefaultAlignment.
func (a *Arena) Alloc(size int) ([]byte, error) {
	return a.AllocAlign(size, DefaultAlignment)
}

// CallocAlign is AllocAlign with the returned block zero-filled.
func (a *Arena) CallocAlign(size, alignment int) ([]byte, error) {
	b, err := a.AllocAlign(size, alignment)
	if err == nil {
		clear(b)
	}
	return b, err
}

// Calloc is CallocAlign at DefaultAlignment.
func (a *Arena) Calloc(size int) ([]byte, error) {
	return a.CallocAlign(size, DefaultAlignment)
}

// ReallocAlign grows old into a fresh block, copying its contents forward;
// the original block stays reserved in place, as arenas never reclaim
// individual objects. Shrinking is a no-op that returns old unchanged.
func (a *Arena) ReallocAlign(old []byte, newSize, alignment int) ([]byte, error) {
	if newSize <= len(old) {
		return old, nil
	}
	b, err := a.AllocAlign(newSize, alignment)
	if err != nil {
		return nil, err
	}
	copy(b, old)
	return b, nil
}

// Realloc is ReallocAlign at DefaultAlignment.
func (a *Arena) Realloc(old []byte, newSize int) ([]byte, error) {
	return a.ReallocAlign(old, newSize, DefaultAlignment)
}

// FreeAll makes every region's capacity reusable without returning memory
// anywhere: each bump cursor rewinds to its chunk start and the region
// cursor returns to the head of the chain. O(regions), not O(bytes).
func (a *Arena) FreeAll() {
	a.panicIfDestroyed()
	for _, r := range a.regions {
		r.reset()
	}
	a.active = 0
}

// Destroy releases every region in chain order and makes the arena
// unusable; subsequent operations panic. Release is best-effort per
// region: one failing release does not stop the rest of the chain, and
// the individual failures come back joined in the returned error.
// Destroying an already-destroyed arena is a no-op.
func (a *Arena) Destroy() error {
	if a.destroyed {
		return nil
	}
	var errs []error
	for _, r := range a.regions {
		if err := a.release(r.buf); err != nil {
			errs = append(errs, err)
		}
	}
	a.regions = nil
	a.active = 0
	a.destroyed = true
	return errors.Join(errs...)
}

// Report sums usage across the whole chain: used counts bytes consumed by
// allocations (alignment padding included), reserved counts total chunk
// capacity. Purely diagnostic.
func (a *Arena) Report() (used, reserved int) {
	for _, r := range a.regions {
		used += len(r.chunk) - r.Available()
		reserved += len(r.chunk)
	}
	return used, reserved
}

// NumRegions returns the number of regions currently in the chain.
func (a *Arena) NumRegions() int {
	return len(a.regions)
}

// Backend names the compile-time OS backend this build selected.
func Backend() string {
	return backendName
}

// appendRegion links a fresh region able to hold a size-byte request onto
// the end of the chain. Region buffers stay page-friendly: the target is
// DefaultFactor pages, rounded up in whole targets when the request plus
// header is larger. On failure nothing is linked.
func (a *Arena) appendRegion(size int) error {
	need := size + headerSize
	bufLen := DefaultFactor * os.Getpagesize()
	if need > bufLen {
		factor := need / bufLen
		if factor*bufLen < need {
			factor++
		}
		bufLen = factor * bufLen
	}

	buf, err := a.acquire(bufLen)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	if buf == nil {
		return ErrOutOfMemory
	}

	a.regions = append(a.regions, NewRegion(buf))
	return nil
}

func (a *Arena) acquire(size int) ([]byte, error) {
	if a.alloc != nil {
		return a.alloc.Alloc(size)
	}
	return backendAlloc(size)
}

func (a *Arena) release(buf []byte) error {
	if a.alloc != nil {
		return a.alloc.Free(buf)
	}
	return backendFree(buf)
}

func (a *Arena) panicIfDestroyed() {
	if a.destroyed {
		panic("arena: use after Destroy")
	}
}
