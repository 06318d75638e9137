package metrics

import "github.com/san-kum/odestep/internal/dynamo"

// Metric accumulates a statistic over the samples of one trajectory.
type Metric interface {
	Name() string
	Observe(x []float64, t float64)
	Value() float64
	Reset()
}

// ObserveScalar resets ms and feeds them every sample of traj.
func ObserveScalar(traj dynamo.Trajectory, stepsize float64, ms ...Metric) map[string]float64 {
	reset(ms)
	var x [1]float64
	for i, v := range traj {
		x[0] = v
		observe(ms, x[:], float64(i)*stepsize)
	}
	return collect(ms)
}

// ObserveVector resets ms and feeds them the x, y, z of every step of traj.
func ObserveVector(traj *dynamo.Trajectory3D, stepsize float64, ms ...Metric) map[string]float64 {
	reset(ms)
	for i := 0; i < traj.Len(); i++ {
		s := traj.State(i)
		observe(ms, s[:], float64(i)*stepsize)
	}
	return collect(ms)
}

func reset(ms []Metric) {
	for _, m := range ms {
		m.Reset()
	}
}

func observe(ms []Metric, x []float64, t float64) {
	for _, m := range ms {
		m.Observe(x, t)
	}
}

func collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Default returns the metrics reported for every run.
func Default() []Metric {
	return []Metric{NewExtent(), NewFinal(), NewStability(1e6), NewFinite()}
}
