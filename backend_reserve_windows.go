//go:build arena_reserve && windows

package arena

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Reservation backend: region buffers come from VirtualAlloc and go back
// with VirtualFree(MEM_RELEASE).

const backendName = "reserve"

func backendAlloc(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func backendFree(buf []byte) error {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
