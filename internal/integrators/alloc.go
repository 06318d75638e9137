package integrators

import (
	"runtime"

	"github.com/san-kum/odestep/internal/dynamo"
)

// makeBuffer runs alloc and maps a recoverable allocation panic (length out
// of range, size overflow on 32-bit targets) to dynamo.ErrAllocation.
// Exhausting the heap is fatal in Go and cannot be reported here.
func makeBuffer[T any](n int, alloc func(int) T) (buf T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			var zero T
			buf, err = zero, dynamo.ErrAllocation
		}
	}()
	return alloc(n), nil
}
