package integrators

import (
	"github.com/san-kum/odestep/internal/dynamo"
)

// Integrate solves dx/dt = f(t, x) from x0 over [0, horizon] with the
// explicit Euler method. The returned trajectory holds floor(horizon/stepsize)
// samples; sample i is the state at i*stepsize.
func Integrate(x0, horizon, stepsize float64, f dynamo.ScalarFunc) (dynamo.Trajectory, error) {
	n, err := plan("integrate", horizon, stepsize, f == nil)
	if err != nil {
		return nil, err
	}

	out, err := makeBuffer(n, func(n int) dynamo.Trajectory { return make(dynamo.Trajectory, n) })
	if err != nil {
		return nil, wrap("integrate", horizon, stepsize, err)
	}
	if n == 0 {
		return out, nil
	}

	out[0] = x0
	for i := 1; i < n; i++ {
		prev := out[i-1]
		out[i] = prev + stepsize*f(float64(i)*stepsize, prev)
	}

	return out, nil
}

// plan runs the checks shared by both steppers.
func plan(op string, horizon, stepsize float64, missing bool) (int, error) {
	if missing {
		return 0, wrap(op, horizon, stepsize, dynamo.ErrMissingDerivative)
	}
	n, err := dynamo.Plan(horizon, stepsize)
	if err != nil {
		return 0, wrap(op, horizon, stepsize, err)
	}
	return n, nil
}

func wrap(op string, horizon, stepsize float64, err error) error {
	return &dynamo.IntegrationError{Op: op, Horizon: horizon, StepSize: stepsize, Wrapped: err}
}
