package metrics

import "math"

// Stability is the fraction of samples whose components all stay within
// threshold in absolute value.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(x []float64, t float64) {
	s.samples++
	for _, val := range x {
		if math.Abs(val) > s.threshold || math.IsNaN(val) {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// Finite is the fraction of samples free of NaN and Inf.
type Finite struct {
	bad, samples int
}

func NewFinite() *Finite       { return &Finite{} }
func (f *Finite) Name() string { return "finite" }
func (f *Finite) Reset()       { f.bad, f.samples = 0, 0 }

func (f *Finite) Observe(x []float64, _ float64) {
	f.samples++
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			f.bad++
			return
		}
	}
}

func (f *Finite) Value() float64 {
	if f.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(f.bad)/float64(f.samples)
}
