//go:build arena_mmap && unix

package arena

import "golang.org/x/sys/unix"

// Mmap backend: region buffers are anonymous private mappings, released
// with munmap using the buffer's recorded length.

const backendName = "mmap"

func backendAlloc(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
}

func backendFree(buf []byte) error {
	return unix.Munmap(buf)
}
