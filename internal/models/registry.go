package models

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/odestep/internal/dynamo"
)

var (
	ErrUnknownModel    = errors.New("models: unknown model")
	ErrUnknownParam    = errors.New("models: unknown parameter")
	ErrParameterBounds = errors.New("models: parameter out of valid bounds")
)

func unknownParam(model, name string) error {
	return fmt.Errorf("%s: %q: %w", model, name, ErrUnknownParam)
}

// Configurable exposes a model's tunable parameters.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Scalar is a 1-D right-hand side with a default starting point.
type Scalar interface {
	Configurable
	Derive(t, x float64) float64
	DefaultState() float64
}

// Vector is a 3-D right-hand side with a default starting point.
type Vector interface {
	Configurable
	Derive(t float64, x, out []float64)
	DefaultState() [3]float64
}

// ScalarFunc adapts m to the stepper's derivative shape.
func ScalarFunc(m Scalar) dynamo.ScalarFunc { return m.Derive }

// VectorFunc adapts m to the stepper's derivative shape.
func VectorFunc(m Vector) dynamo.VectorFunc { return m.Derive }

// Registry maps model names to fresh 1-D and 3-D model instances.
type Registry struct {
	scalar map[string]func() Scalar
	vector map[string]func() Vector
}

// NewRegistry returns a registry holding every built-in model.
func NewRegistry() *Registry {
	r := &Registry{
		scalar: make(map[string]func() Scalar),
		vector: make(map[string]func() Vector),
	}

	r.scalar["growth"] = func() Scalar { return NewGrowth() }
	r.scalar["decay"] = func() Scalar { return NewDecay() }
	r.scalar["logistic"] = func() Scalar { return NewLogistic() }
	r.scalar["forced"] = func() Scalar { return NewForced() }

	r.vector["identity"] = func() Vector { return NewIdentity() }
	r.vector["lorenz"] = func() Vector { return NewLorenz() }
	r.vector["rossler"] = func() Vector { return NewRossler() }

	return r
}

func (r *Registry) Scalar(name string) (Scalar, error) {
	fn, ok := r.scalar[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (1-D models: %v)", ErrUnknownModel, name, r.ListScalar())
	}
	return fn(), nil
}

func (r *Registry) Vector(name string) (Vector, error) {
	fn, ok := r.vector[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (3-D models: %v)", ErrUnknownModel, name, r.ListVector())
	}
	return fn(), nil
}

// Dim reports whether name is a 1-D or 3-D model, or 0 if unknown.
func (r *Registry) Dim(name string) int {
	if _, ok := r.scalar[name]; ok {
		return 1
	}
	if _, ok := r.vector[name]; ok {
		return 3
	}
	return 0
}

func (r *Registry) ListScalar() []string { return sortedKeys(r.scalar) }
func (r *Registry) ListVector() []string { return sortedKeys(r.vector) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyParams sets every entry of params on m.
func ApplyParams(m Configurable, params map[string]float64) error {
	for name, v := range params {
		if err := m.SetParam(name, v); err != nil {
			return err
		}
	}
	return nil
}
