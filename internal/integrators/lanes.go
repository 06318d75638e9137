package integrators

import "github.com/san-kum/odestep/internal/dynamo"

// The lane kernels operate on whole LaneWidth groups, padding included, with
// a fixed trip count. Array pointers keep the generic versions free of bounds
// checks; gc still emits them as four scalar operations. Builds with
// GOEXPERIMENT=simd on amd64 swap in a Float64x4 kernel (lanes_simd_amd64.go)
// when the CPU has AVX. Both produce identical results: one multiply and one
// add per slot, no fusion.

func scaleLaneGeneric(l *dynamo.Lane, s float64) {
	l[0] *= s
	l[1] *= s
	l[2] *= s
	l[3] *= s
}

func addLaneGeneric(dst, a, b *dynamo.Lane) {
	dst[0] = a[0] + b[0]
	dst[1] = a[1] + b[1]
	dst[2] = a[2] + b[2]
	dst[3] = a[3] + b[3]
}
