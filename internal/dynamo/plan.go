package dynamo

import "math"

// MaxSteps is the largest step count a single call may produce.
const MaxSteps = math.MaxInt32

// Plan returns floor(horizon/stepsize), the number of samples an
// integration over [0, horizon] produces. It allocates nothing.
func Plan(horizon, stepsize float64) (int, error) {
	if horizon < 0 || math.IsNaN(horizon) {
		return 0, ErrInvalidHorizon
	}
	if stepsize <= 0 || math.IsNaN(stepsize) {
		return 0, ErrInvalidStepSize
	}

	raw := horizon / stepsize
	if raw > MaxSteps {
		return 0, ErrStepCountOverflow
	}

	return int(math.Floor(raw)), nil
}
