package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/odestep/internal/config"
	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/integrators"
	"github.com/san-kum/odestep/internal/metrics"
	"github.com/san-kum/odestep/internal/models"
)

// Result holds one integration. Exactly one of Scalar and Vector is set,
// according to Dim.
type Result struct {
	Model    string
	Dim      int
	X0       []float64
	Horizon  float64
	StepSize float64
	Params   map[string]float64
	Scalar   dynamo.Trajectory
	Vector   *dynamo.Trajectory3D
	Metrics  map[string]float64
}

// Steps is the number of samples produced.
func (r *Result) Steps() int {
	if r.Dim == dynamo.Dim3 {
		return r.Vector.Len()
	}
	return r.Scalar.Len()
}

// Components returns one slice per state component.
func (r *Result) Components() [][]float64 {
	if r.Dim == dynamo.Dim3 {
		return [][]float64{r.Vector.Component(0), r.Vector.Component(1), r.Vector.Component(2)}
	}
	return [][]float64{r.Scalar}
}

// Experiment runs configurations against a model registry.
type Experiment struct {
	registry *models.Registry
}

// New returns an Experiment that resolves models through registry.
func New(registry *models.Registry) *Experiment {
	return &Experiment{registry: registry}
}

// Run resolves cfg.Model, applies cfg.Params and integrates it with the
// stepper matching the model's dimension.
func (e *Experiment) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Model:    cfg.Model,
		X0:       append([]float64(nil), cfg.X0...),
		Horizon:  cfg.Horizon,
		StepSize: cfg.StepSize,
	}

	switch e.registry.Dim(cfg.Model) {
	case 1:
		m, err := e.registry.Scalar(cfg.Model)
		if err != nil {
			return nil, err
		}
		if err := models.ApplyParams(m, cfg.Params); err != nil {
			return nil, err
		}
		x0, err := cfg.Scalar()
		if err != nil {
			return nil, err
		}
		traj, err := integrators.Integrate(x0, cfg.Horizon, cfg.StepSize, models.ScalarFunc(m))
		if err != nil {
			return nil, err
		}
		res.Dim, res.Scalar, res.Params = 1, traj, m.GetParams()
		res.Metrics = metrics.ObserveScalar(traj, cfg.StepSize, metrics.Default()...)
	case dynamo.Dim3:
		m, err := e.registry.Vector(cfg.Model)
		if err != nil {
			return nil, err
		}
		if err := models.ApplyParams(m, cfg.Params); err != nil {
			return nil, err
		}
		x0, err := cfg.Vector()
		if err != nil {
			return nil, err
		}
		traj, err := integrators.Integrate3D(x0, cfg.Horizon, cfg.StepSize, models.VectorFunc(m))
		if err != nil {
			return nil, err
		}
		res.Dim, res.Vector, res.Params = dynamo.Dim3, traj, m.GetParams()
		res.Metrics = metrics.ObserveVector(traj, cfg.StepSize, metrics.Default()...)
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownModel, cfg.Model)
	}

	return res, nil
}
