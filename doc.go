// Package arena implements a region-based bump allocator (memory arena).
//
// # Overview
//
// An arena services many small allocation requests out of large backing
// regions and chains additional regions on demand. Individual objects are
// never freed one at a time; the whole arena is released at once, or reset
// cheaply for reuse. This suits single-owner allocation patterns such as:
//
//   - Parsers and batch jobs with a clear end of life
//   - Request-scoped scratch memory in servers
//   - Reducing garbage collection pressure for short-lived object storms
//
// # Basic Usage
//
//	a := arena.NewArena(nil) // nil selects the compile-time OS backend
//	defer a.Destroy()        // release every region
//
//	// Allocate raw bytes at default (pointer) alignment
//	buf, err := a.Alloc(1024)
//
//	// Allocate with explicit alignment
//	page, err := a.AllocAlign(4096, 64)
//
//	// Typed values and slices
//	ptr, err := arena.New[MyStruct](a)
//	nums, err := arena.MakeSlice[int](a, 100)
//
//	// Reuse all regions without releasing them (O(regions))
//	a.FreeAll()
//
// # Memory Layout
//
// Each region is one contiguous buffer holding a small header reservation
// followed by a payload chunk. Allocation bumps a monotonic cursor through
// the chunk. The arena keeps its regions in an append-only chain with a
// forward-only cursor: once the cursor passes a region for a request, that
// region is not revisited until FreeAll. New regions target DefaultFactor
// OS pages and scale up in whole targets for larger single requests.
//
// # Backends and Pluggable Allocators
//
// Region buffers come from a backend selected at build time: the Go heap
// by default, anonymous memory mappings with the arena_mmap build tag, or
// a virtual-memory reservation with the arena_reserve build tag.
// Alternatively, a caller-supplied Allocator routes every acquisition and
// release through embedding code without rebuilding.
//
// # Thread Safety
//
// None. Every operation mutates chain state without locking; callers that
// share an arena must serialize externally. One arena per goroutine is the
// intended pattern.
//
// # Important Notes
//
//   - Allocated blocks are only valid until Destroy (and logically until
//     FreeAll, which marks their storage reusable)
//   - No individual deallocation; Realloc abandons the old block in place
//   - Alloc does not zero memory; use Calloc or the typed helpers
//
// # Diagnostics
//
//	used, reserved := a.Report()
//	m := a.Metrics()
//	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)
package arena
