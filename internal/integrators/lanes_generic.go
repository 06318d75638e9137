//go:build !(amd64 && goexperiment.simd)

package integrators

import "github.com/san-kum/odestep/internal/dynamo"

// LaneKernel names the kernel Integrate3D uses on this build.
func LaneKernel() string { return "generic" }

func scaleLane(l *dynamo.Lane, s float64) { scaleLaneGeneric(l, s) }

func addLane(dst, a, b *dynamo.Lane) { addLaneGeneric(dst, a, b) }
