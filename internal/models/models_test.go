package models

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/odestep/internal/integrators"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		dim  int
	}{
		{"growth", 1},
		{"decay", 1},
		{"logistic", 1},
		{"forced", 1},
		{"identity", 3},
		{"lorenz", 3},
		{"rossler", 3},
		{"pendulum", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Dim(tt.name); got != tt.dim {
				t.Errorf("Dim(%q) = %d, want %d", tt.name, got, tt.dim)
			}
		})
	}

	if _, err := r.Scalar("lorenz"); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel for 3-D name, got %v", err)
	}
	if _, err := r.Vector("growth"); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel for 1-D name, got %v", err)
	}
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry()
	if got := r.ListScalar(); len(got) != 4 || got[0] != "decay" {
		t.Errorf("ListScalar() = %v", got)
	}
	if got := r.ListVector(); len(got) != 3 || got[0] != "identity" {
		t.Errorf("ListVector() = %v", got)
	}
}

func TestDecay_MatchesEulerRecurrence(t *testing.T) {
	m := NewDecay()
	traj, err := integrators.Integrate(1, 1, 0.125, ScalarFunc(m))
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pow(1-0.125*0.5, float64(traj.Len()-1))
	if got := traj[traj.Len()-1]; math.Abs(got-want) > 1e-12 {
		t.Errorf("final = %v, want %v", got, want)
	}
}

func TestLogistic_ApproachesCapacity(t *testing.T) {
	m := NewLogistic()
	traj, err := integrators.Integrate(m.DefaultState(), 30, 0.01, ScalarFunc(m))
	if err != nil {
		t.Fatal(err)
	}
	if got := traj[traj.Len()-1]; math.Abs(got-1) > 1e-3 {
		t.Errorf("expected logistic growth to settle near K=1, got %v", got)
	}
}

func TestLorenz_Derive(t *testing.T) {
	out := make([]float64, 4)
	NewLorenz().Derive(0, []float64{1, 1, 1}, out)
	want := []float64{0, 26, 1 - 8.0/3.0}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	if out[3] != 0 {
		t.Errorf("Lorenz wrote the padding slot: %v", out[3])
	}
}

func TestLorenz_StaysBounded(t *testing.T) {
	m := NewLorenz()
	traj, err := integrators.Integrate3D(m.DefaultState(), 20, 0.001, VectorFunc(m))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < traj.Len(); i++ {
		s := traj.State(i)
		if math.Abs(s[0]) > 50 || math.Abs(s[1]) > 50 || s[2] < -1 || s[2] > 80 {
			t.Fatalf("step %d left the attractor: %v", i, s)
		}
	}
}

func TestSetParam(t *testing.T) {
	tests := []struct {
		name    string
		model   Configurable
		param   string
		value   float64
		wantErr error
	}{
		{"growth rate", NewGrowth(), "rate", 2, nil},
		{"growth unknown", NewGrowth(), "k", 1, ErrUnknownParam},
		{"logistic zero K", NewLogistic(), "K", 0, ErrParameterBounds},
		{"rossler c", NewRossler(), "c", 4, nil},
		{"identity has none", NewIdentity(), "a", 1, ErrUnknownParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyParams(tt.model, map[string]float64{tt.param: tt.value})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && tt.model.GetParams()[tt.param] != tt.value {
				t.Errorf("param %s not applied", tt.param)
			}
		})
	}
}
