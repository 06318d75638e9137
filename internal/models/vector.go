package models

// Identity is dX/dt = X on each of x, y, z.
type Identity struct{}

func NewIdentity() *Identity                   { return &Identity{} }
func (Identity) DefaultState() [3]float64      { return [3]float64{0.001, 0.001, 0.001} }
func (Identity) GetParams() map[string]float64 { return map[string]float64{} }
func (Identity) SetParam(n string, _ float64) error {
	return unknownParam("identity", n)
}

func (Identity) Derive(_ float64, s, out []float64) {
	out[0], out[1], out[2] = s[0], s[1], s[2]
}

type Lorenz struct{ sigma, rho, beta float64 }

func NewLorenz() *Lorenz                   { return &Lorenz{10.0, 28.0, 8.0 / 3.0} }
func (l *Lorenz) DefaultState() [3]float64 { return [3]float64{1.0, 1.0, 1.0} }

// Derive writes the Lorenz attractor derivatives.
func (l *Lorenz) Derive(_ float64, s, out []float64) {
	out[0] = l.sigma * (s[1] - s[0])
	out[1] = s[0]*(l.rho-s[2]) - s[1]
	out[2] = s[0]*s[1] - l.beta*s[2]
}
func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta}
}
func (l *Lorenz) SetParam(n string, v float64) error {
	switch n {
	case "sigma":
		l.sigma = v
	case "rho":
		l.rho = v
	case "beta":
		l.beta = v
	default:
		return unknownParam("lorenz", n)
	}
	return nil
}

type Rossler struct{ a, b, c float64 }

func NewRossler() *Rossler                  { return &Rossler{0.2, 0.2, 5.7} }
func (r *Rossler) DefaultState() [3]float64 { return [3]float64{1.0, 1.0, 1.0} }

// Derive writes the Rossler attractor derivatives.
func (r *Rossler) Derive(_ float64, s, out []float64) {
	out[0] = -s[1] - s[2]
	out[1] = s[0] + r.a*s[1]
	out[2] = r.b + s[2]*(s[0]-r.c)
}
func (r *Rossler) GetParams() map[string]float64 {
	return map[string]float64{"a": r.a, "b": r.b, "c": r.c}
}
func (r *Rossler) SetParam(n string, v float64) error {
	switch n {
	case "a":
		r.a = v
	case "b":
		r.b = v
	case "c":
		r.c = v
	default:
		return unknownParam("rossler", n)
	}
	return nil
}
