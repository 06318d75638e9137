//go:build amd64 && goexperiment.simd

package integrators

import (
	"simd/archsimd"

	"github.com/san-kum/odestep/internal/dynamo"
)

var useAVX = archsimd.X86.AVX()

// LaneKernel names the kernel Integrate3D uses on this build and CPU.
func LaneKernel() string {
	if useAVX {
		return "avx-f64x4"
	}
	return "generic"
}

func scaleLane(l *dynamo.Lane, s float64) {
	if !useAVX {
		scaleLaneGeneric(l, s)
		return
	}
	v := archsimd.LoadFloat64x4Slice(l[:])
	v.Mul(archsimd.BroadcastFloat64x4(s)).StoreSlice(l[:])
}

func addLane(dst, a, b *dynamo.Lane) {
	if !useAVX {
		addLaneGeneric(dst, a, b)
		return
	}
	va := archsimd.LoadFloat64x4Slice(a[:])
	vb := archsimd.LoadFloat64x4Slice(b[:])
	va.Add(vb).StoreSlice(dst[:])
}
