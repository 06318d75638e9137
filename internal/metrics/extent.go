package metrics

import "math"

// Extent is the largest absolute component seen.
type Extent struct{ max float64 }

func NewExtent() *Extent       { return &Extent{} }
func (e *Extent) Name() string { return "extent" }
func (e *Extent) Reset()       { e.max = 0 }
func (e *Extent) Value() float64 {
	return e.max
}

func (e *Extent) Observe(x []float64, _ float64) {
	for _, v := range x {
		e.max = math.Max(e.max, math.Abs(v))
	}
}

// Final is the Euclidean norm of the last sample.
type Final struct{ norm float64 }

func NewFinal() *Final          { return &Final{} }
func (f *Final) Name() string   { return "final_norm" }
func (f *Final) Reset()         { f.norm = 0 }
func (f *Final) Value() float64 { return f.norm }

func (f *Final) Observe(x []float64, _ float64) {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	f.norm = math.Sqrt(sum)
}
