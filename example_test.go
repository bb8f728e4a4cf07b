package arena_test

import (
	"fmt"

	"github.com/memkit/arena"
)

// Example demonstrates basic arena usage.
func Example() {
	a := arena.NewArena(nil)
	defer a.Destroy()

	// Allocate raw bytes at default alignment
	buf, _ := a.Alloc(1024)
	fmt.Printf("allocated %d bytes\n", len(buf))

	// Typed values and slices
	ptr, _ := arena.New[int](a)
	*ptr = 42
	fmt.Printf("typed value: %d\n", *ptr)

	nums, _ := arena.MakeSlice[int](a, 5)
	for i := range nums {
		nums[i] = i * 2
	}
	fmt.Printf("slice: %v\n", nums)

	// Rewind every region for reuse
	a.FreeAll()
	used, _ := a.Report()
	fmt.Printf("used after FreeAll: %d\n", used)

	// Output:
	// allocated 1024 bytes
	// typed value: 42
	// slice: [0 2 4 6 8]
	// used after FreeAll: 0
}

// ExampleArena_AllocAlign shows allocation with an explicit alignment.
func ExampleArena_AllocAlign() {
	a := arena.NewArena(nil)
	defer a.Destroy()

	b, err := a.AllocAlign(256, 64)
	if err != nil {
		fmt.Println("allocation failed:", err)
		return
	}
	fmt.Printf("got %d bytes\n", len(b))

	// Output:
	// got 256 bytes
}

// ExampleArena_Report shows chain-wide usage accounting.
func ExampleArena_Report() {
	a := arena.NewArena(nil)
	defer a.Destroy()

	used, reserved := a.Report()
	fmt.Printf("empty: used=%d reserved=%d\n", used, reserved)

	a.Alloc(100)
	used, _ = a.Report()
	fmt.Printf("after alloc: used=%d\n", used)

	// Output:
	// empty: used=0 reserved=0
	// after alloc: used=100
}

// countingAllocator routes the arena's buffers through caller-owned code.
type countingAllocator struct {
	acquired int
}

func (c *countingAllocator) Alloc(size int) ([]byte, error) {
	c.acquired++
	return make([]byte, size), nil
}

func (c *countingAllocator) Realloc(old []byte, newSize int) ([]byte, error) {
	if newSize <= len(old) {
		return old, nil
	}
	b := make([]byte, newSize)
	copy(b, old)
	return b, nil
}

func (c *countingAllocator) Free(buf []byte) error { return nil }

// ExampleNewArena_allocator plugs in a custom allocator that observes
// every region the arena acquires.
func ExampleNewArena_allocator() {
	alloc := &countingAllocator{}
	a := arena.NewArena(alloc)
	defer a.Destroy()

	a.Alloc(100)
	a.Alloc(200)
	fmt.Printf("regions acquired: %d\n", alloc.acquired)

	// Output:
	// regions acquired: 1
}
