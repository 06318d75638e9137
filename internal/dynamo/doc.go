// Package dynamo provides the core primitives for fixed-step Euler
// integration of ordinary differential equations.
//
// The package defines the shared contract of the steppers in
// [github.com/san-kum/odestep/internal/integrators]:
//
//   - [ScalarFunc] and [VectorFunc]: right-hand sides dX/dt = f(t, X)
//   - [Trajectory]: dense 1-D result
//   - [Trajectory3D]: 3-D result stored as [Lane] groups of [LaneWidth] slots
//   - [Plan]: step count computation and input validation
//
// # Lane layout
//
// A 3-D state occupies one [Lane] of four float64 slots. Slots 0-2 hold
// x, y and z; slot 3 is padding so every group starts on a 32-byte stride.
// Accessors on [Trajectory3D] never read the padding slot.
//
// # Thread Safety
//
// Nothing in this package holds state across calls. Trajectories are owned
// by the caller once returned and are not synchronized.
package dynamo
