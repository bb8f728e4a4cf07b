//go:build !arena_mmap && !arena_reserve

package arena

// Heap backend: region buffers come from the Go heap and are released by
// dropping the reference.

const backendName = "heap"

func backendAlloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func backendFree(buf []byte) error {
	return nil
}
