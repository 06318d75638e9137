package dynamo

import "fmt"

// LaneWidth is the number of float64 slots per 3-D state group.
const LaneWidth = 4

// Dim3 is the number of meaningful slots in a Lane.
const Dim3 = 3

// ScalarFunc is the right-hand side of dx/dt = f(t, x).
type ScalarFunc func(t, x float64) float64

// VectorFunc is the right-hand side of a 3-D system. x holds the three state
// components; the function writes three derivatives to out[0:3]. out has
// LaneWidth slots, the last of which need not be written.
type VectorFunc func(t float64, x, out []float64)

// Trajectory is a dense 1-D solution: element i is the state at i*stepsize.
type Trajectory []float64

func (tr Trajectory) Len() int { return len(tr) }

// Lane is one 3-D state padded to LaneWidth slots.
type Lane [LaneWidth]float64

// Trajectory3D is a 3-D solution stored as contiguous lane groups.
// Group i covers slots [LaneWidth*i, LaneWidth*i+LaneWidth).
type Trajectory3D struct {
	lanes []Lane
}

// NewTrajectory3D wraps lanes; the caller hands over ownership.
func NewTrajectory3D(lanes []Lane) *Trajectory3D {
	return &Trajectory3D{lanes: lanes}
}

// Len returns the number of steps.
func (tr *Trajectory3D) Len() int {
	if tr == nil {
		return 0
	}
	return len(tr.lanes)
}

// At returns component k (0=x, 1=y, 2=z) at step i.
func (tr *Trajectory3D) At(i, k int) float64 {
	if k < 0 || k >= Dim3 {
		panic(fmt.Sprintf("dynamo: component %d out of range [0,%d)", k, Dim3))
	}
	return tr.lanes[i][k]
}

// State returns the x, y, z components at step i.
func (tr *Trajectory3D) State(i int) [Dim3]float64 {
	l := &tr.lanes[i]
	return [Dim3]float64{l[0], l[1], l[2]}
}

// Component copies component k of every step into a new slice.
func (tr *Trajectory3D) Component(k int) []float64 {
	out := make([]float64, tr.Len())
	for i := range out {
		out[i] = tr.At(i, k)
	}
	return out
}

// Lanes exposes the raw padded buffer. Slot 3 of every group carries no
// meaning and must not be interpreted.
func (tr *Trajectory3D) Lanes() []Lane {
	return tr.lanes
}
