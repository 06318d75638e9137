package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for integration calls.
var (
	// ErrInvalidHorizon indicates a negative (or NaN) time horizon.
	ErrInvalidHorizon = errors.New("dynamo: invalid time horizon (must be >= 0)")

	// ErrInvalidStepSize indicates a non-positive (or NaN) step size.
	ErrInvalidStepSize = errors.New("dynamo: invalid step size (must be > 0)")

	// ErrMissingDerivative indicates a nil derivative function.
	ErrMissingDerivative = errors.New("dynamo: missing derivative function")

	// ErrStepCountOverflow indicates the step size is too small for the horizon.
	ErrStepCountOverflow = errors.New("dynamo: integration step is too small (step count overflow)")

	// ErrAllocation indicates the trajectory buffer could not be obtained.
	ErrAllocation = errors.New("dynamo: trajectory memory is unavailable")
)

// IntegrationError wraps an error with the inputs of the failed call.
type IntegrationError struct {
	Op       string
	Horizon  float64
	StepSize float64
	Wrapped  error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%s (horizon=%g, stepsize=%g): %v", e.Op, e.Horizon, e.StepSize, e.Wrapped)
}

func (e *IntegrationError) Unwrap() error {
	return e.Wrapped
}
