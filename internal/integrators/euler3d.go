package integrators

import (
	"github.com/san-kum/odestep/internal/dynamo"
)

// Integrate3D solves a 3-D system with the explicit Euler method using the
// padded lane layout. Validation and step count match Integrate.
//
// The padding slot of every group is carried through the update
// (prev[3] + stepsize*scratch[3]) and never reset. It stays zero unless f
// writes out[3]; either way no accessor reads it.
func Integrate3D(x0 [3]float64, horizon, stepsize float64, f dynamo.VectorFunc) (*dynamo.Trajectory3D, error) {
	n, err := plan("integrate3d", horizon, stepsize, f == nil)
	if err != nil {
		return nil, err
	}

	lanes, err := makeBuffer(n, func(n int) []dynamo.Lane { return make([]dynamo.Lane, n) })
	if err != nil {
		return nil, wrap("integrate3d", horizon, stepsize, err)
	}
	if n == 0 {
		return dynamo.NewTrajectory3D(lanes), nil
	}

	copy(lanes[0][:dynamo.Dim3], x0[:])

	var scratch dynamo.Lane
	for i := 1; i < n; i++ {
		in := &lanes[i-1]
		f(float64(i)*stepsize, in[:dynamo.Dim3:dynamo.Dim3], scratch[:])
		scaleLane(&scratch, stepsize)
		addLane(&lanes[i], in, &scratch)
	}

	return dynamo.NewTrajectory3D(lanes), nil
}
