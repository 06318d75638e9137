// Package compute reports the vector width the host CPU offers for the lane
// kernels.
//
// The 3-D stepper works on groups of four float64 slots. OpsPerLane is the
// number of vector operations one group takes at the detected ISA's register
// width:
//
//	f := compute.Detect()
//	fmt.Println(f.ISA, f.OpsPerLane())
//
// It is a capability figure, not a measurement. Which kernel actually runs
// is decided by the build (see integrators.LaneKernel). Detection is
// informational and is recorded with stored runs.
package compute
