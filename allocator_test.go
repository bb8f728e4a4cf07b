package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingAllocator wraps the heap in a pluggable allocator that records
// every acquisition and release and can inject failures.
type recordingAllocator struct {
	allocs   []int
	frees    []int
	failNext bool
	failFree map[int]error // buffer length -> error to return from Free
}

func (m *recordingAllocator) Alloc(size int) ([]byte, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("injected failure")
	}
	m.allocs = append(m.allocs, size)
	return make([]byte, size), nil
}

func (m *recordingAllocator) Realloc(old []byte, newSize int) ([]byte, error) {
	if newSize <= len(old) {
		return old, nil
	}
	b, err := m.Alloc(newSize)
	if err != nil {
		return nil, err
	}
	copy(b, old)
	return b, nil
}

func (m *recordingAllocator) Free(buf []byte) error {
	m.frees = append(m.frees, len(buf))
	if err, ok := m.failFree[len(buf)]; ok {
		return err
	}
	return nil
}

func TestPluggableAllocatorHandlesEveryRegion(t *testing.T) {
	rec := &recordingAllocator{}
	a := NewArena(rec)

	_, err := a.Alloc(100)
	require.NoError(t, err)
	_, err = a.Alloc(defaultRegionTarget()) // forces a second region
	require.NoError(t, err)
	require.Equal(t, 2, a.NumRegions())
	require.Len(t, rec.allocs, 2)

	require.NoError(t, a.Destroy())
	require.Equal(t, rec.allocs, rec.frees)
}

func TestAllocatorFailureLeavesArenaIntact(t *testing.T) {
	rec := &recordingAllocator{}
	a := NewArena(rec)
	defer a.Destroy()

	_, err := a.Alloc(100)
	require.NoError(t, err)

	regions := a.NumRegions()
	cursor := a.active
	usedBefore, reservedBefore := a.Report()

	rec.failNext = true
	_, err = a.Alloc(defaultRegionTarget()) // needs a region the allocator refuses
	require.ErrorIs(t, err, ErrOutOfMemory)

	// no partial region linked, no cursor moved
	require.Equal(t, regions, a.NumRegions())
	require.Equal(t, cursor, a.active)
	used, reserved := a.Report()
	require.Equal(t, usedBefore, used)
	require.Equal(t, reservedBefore, reserved)

	// the arena still works afterwards
	_, err = a.Alloc(100)
	require.NoError(t, err)
}

func TestAllocatorFailureOnFirstRegion(t *testing.T) {
	rec := &recordingAllocator{failNext: true}
	a := NewArena(rec)
	defer a.Destroy()

	_, err := a.Alloc(100)
	require.ErrorIs(t, err, ErrOutOfMemory)
	require.Equal(t, 0, a.NumRegions())
}

// One failing release must not stop the rest of the chain from being
// released.
func TestDestroyIsBestEffort(t *testing.T) {
	rec := &recordingAllocator{failFree: map[int]error{}}
	a := NewArena(rec)

	// three regions of distinct buffer sizes
	s := defaultRegionTarget()
	for _, size := range []int{100, s, 3 * s} {
		_, err := a.Alloc(size)
		require.NoError(t, err)
	}
	require.Equal(t, 3, a.NumRegions())
	require.Len(t, rec.allocs, 3)

	failed := errors.New("unmap failed")
	rec.failFree[rec.allocs[1]] = failed

	err := a.Destroy()
	require.ErrorIs(t, err, failed)

	// every region was still offered for release, in chain order
	require.Equal(t, rec.allocs, rec.frees)
}

func TestNilBufferFromAllocatorIsOutOfMemory(t *testing.T) {
	a := NewArena(nilAllocator{})
	defer a.Destroy()

	_, err := a.Alloc(100)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

type nilAllocator struct{}

func (nilAllocator) Alloc(int) ([]byte, error)           { return nil, nil }
func (nilAllocator) Realloc([]byte, int) ([]byte, error) { return nil, nil }
func (nilAllocator) Free([]byte) error                   { return nil }
