package models

import (
	"fmt"
	"math"
)

// Growth is dx/dt = rate*x.
type Growth struct{ rate float64 }

func NewGrowth() *Growth                { return &Growth{rate: 1} }
func (g *Growth) DefaultState() float64 { return 0.001 }

// Derive returns rate*x; t is ignored.
func (g *Growth) Derive(_, x float64) float64 { return g.rate * x }
func (g *Growth) GetParams() map[string]float64 {
	return map[string]float64{"rate": g.rate}
}
func (g *Growth) SetParam(n string, v float64) error {
	switch n {
	case "rate":
		g.rate = v
	default:
		return unknownParam("growth", n)
	}
	return nil
}

// Decay is dx/dt = -k*x.
type Decay struct{ k float64 }

func NewDecay() *Decay                 { return &Decay{k: 0.5} }
func (d *Decay) DefaultState() float64 { return 1 }
func (d *Decay) Derive(_, x float64) float64 {
	return -d.k * x
}
func (d *Decay) GetParams() map[string]float64 { return map[string]float64{"k": d.k} }
func (d *Decay) SetParam(n string, v float64) error {
	if n != "k" {
		return unknownParam("decay", n)
	}
	d.k = v
	return nil
}

// Logistic is dx/dt = r*x*(1 - x/K).
type Logistic struct{ r, capacity float64 }

func NewLogistic() *Logistic              { return &Logistic{r: 1, capacity: 1} }
func (l *Logistic) DefaultState() float64 { return 0.01 }
func (l *Logistic) Derive(_, x float64) float64 {
	return l.r * x * (1 - x/l.capacity)
}
func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{"r": l.r, "K": l.capacity}
}
func (l *Logistic) SetParam(n string, v float64) error {
	switch n {
	case "r":
		l.r = v
	case "K":
		if v == 0 {
			return fmt.Errorf("logistic: K: %w", ErrParameterBounds)
		}
		l.capacity = v
	default:
		return unknownParam("logistic", n)
	}
	return nil
}

// Forced is a damped first-order system under sinusoidal forcing:
// dx/dt = -x/tau + amp*sin(omega*t).
type Forced struct{ tau, amp, omega float64 }

func NewForced() *Forced                { return &Forced{tau: 1, amp: 1, omega: 1} }
func (f *Forced) DefaultState() float64 { return 0 }
func (f *Forced) Derive(t, x float64) float64 {
	return -x/f.tau + f.amp*math.Sin(f.omega*t)
}
func (f *Forced) GetParams() map[string]float64 {
	return map[string]float64{"tau": f.tau, "amp": f.amp, "omega": f.omega}
}
func (f *Forced) SetParam(n string, v float64) error {
	switch n {
	case "tau":
		f.tau = v
	case "amp":
		f.amp = v
	case "omega":
		f.omega = v
	default:
		return unknownParam("forced", n)
	}
	return nil
}
