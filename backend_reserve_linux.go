//go:build arena_reserve && linux

package arena

import "golang.org/x/sys/unix"

// Reservation backend: anonymous mappings with MAP_NORESERVE, so the
// kernel reserves address space without committing swap up front.

const backendName = "reserve"

func backendAlloc(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON|unix.MAP_NORESERVE)
}

func backendFree(buf []byte) error {
	return unix.Munmap(buf)
}
