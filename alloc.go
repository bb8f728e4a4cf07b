package arena

import "unsafe"

// New returns a pointer to a zeroed T stored inside the arena, placed at
// T's natural alignment. The pointer is valid until the arena is destroyed
// or reset with FreeAll.
func New[T any](a *Arena) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T), nil
	}
	b, err := a.CallocAlign(size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// MakeSlice allocates a zeroed slice of n elements of type T inside the
// arena, placed at T's natural alignment. Returns nil for n <= 0.
func MakeSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return make([]T, n), nil
	}
	b, err := a.CallocAlign(n*size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}
