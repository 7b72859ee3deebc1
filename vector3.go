package space3

// Vector3 is a 3-component double-precision vector. It is a plain value type;
// Clone and the <op>C variants allocate, everything else works in place.
type Vector3 [3]float64

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{x, y, z}
}

// Clone returns an independent copy of v.
func (v *Vector3) Clone() *Vector3 {
	c := *v
	return &c
}

// Copy overwrites v with the components of w and returns v.
func (v *Vector3) Copy(w *Vector3) *Vector3 {
	*v = *w
	return v
}

// Add accumulates w into v.
func (v *Vector3) Add(w *Vector3) *Vector3 {
	v[0] += w[0]
	v[1] += w[1]
	v[2] += w[2]
	return v
}

// AddC returns v + w without touching v.
func (v *Vector3) AddC(w *Vector3) *Vector3 {
	return v.Clone().Add(w)
}

// Sub subtracts w from v.
func (v *Vector3) Sub(w *Vector3) *Vector3 {
	v[0] -= w[0]
	v[1] -= w[1]
	v[2] -= w[2]
	return v
}

// SubC returns v - w without touching v.
func (v *Vector3) SubC(w *Vector3) *Vector3 {
	return v.Clone().Sub(w)
}

// Neg negates every component of v.
func (v *Vector3) Neg() *Vector3 {
	v[0] = -v[0]
	v[1] = -v[1]
	v[2] = -v[2]
	return v
}

// NegC returns -v without touching v.
func (v *Vector3) NegC() *Vector3 {
	return v.Clone().Neg()
}

// Mul scales v by s.
func (v *Vector3) Mul(s float64) *Vector3 {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	return v
}

// MulC returns s·v without touching v.
func (v *Vector3) MulC(s float64) *Vector3 {
	return v.Clone().Mul(s)
}

// Div scales v by 1/s. Division by zero follows IEEE-754: components become
// ±Inf or NaN, no error is raised.
func (v *Vector3) Div(s float64) *Vector3 {
	v[0] /= s
	v[1] /= s
	v[2] /= s
	return v
}

// DivC returns v/s without touching v.
func (v *Vector3) DivC(s float64) *Vector3 {
	return v.Clone().Div(s)
}

// Lerp moves v toward w by fraction t (t=0 leaves v, t=1 reaches w).
func (v *Vector3) Lerp(w *Vector3, t float64) *Vector3 {
	v[0] += (w[0] - v[0]) * t
	v[1] += (w[1] - v[1]) * t
	v[2] += (w[2] - v[2]) * t
	return v
}

// LerpC returns the interpolated vector without touching v.
func (v *Vector3) LerpC(w *Vector3, t float64) *Vector3 {
	return v.Clone().Lerp(w, t)
}

// Fill sets every component to s.
func (v *Vector3) Fill(s float64) *Vector3 {
	v[0], v[1], v[2] = s, s, s
	return v
}

// FillC returns a vector with every component set to s, without touching v.
func (v *Vector3) FillC(s float64) *Vector3 {
	return v.Clone().Fill(s)
}

// Norm scales v to unit magnitude. A zero vector divides to NaN components.
func (v *Vector3) Norm() *Vector3 {
	return v.Div(v.Mag())
}

// NormC returns the unit vector without touching v.
func (v *Vector3) NormC() *Vector3 {
	return v.Clone().Norm()
}

// Cross replaces v with v × w.
func (v *Vector3) Cross(w *Vector3) *Vector3 {
	x := v[1]*w[2] - v[2]*w[1]
	y := v[2]*w[0] - v[0]*w[2]
	z := v[0]*w[1] - v[1]*w[0]
	v[0], v[1], v[2] = x, y, z
	return v
}

// CrossC returns v × w without touching v.
func (v *Vector3) CrossC(w *Vector3) *Vector3 {
	return v.Clone().Cross(w)
}

// Dot returns the dot product of v and w.
func (v *Vector3) Dot(w *Vector3) float64 {
	return Dot(v[:], w[:])
}

// Mag returns the Euclidean magnitude of v.
func (v *Vector3) Mag() float64 {
	return Mag(v[:])
}

// Mag2 returns the squared magnitude of v.
func (v *Vector3) Mag2() float64 {
	return Mag2(v[:])
}

// Dist returns the Euclidean distance between v and w.
func (v *Vector3) Dist(w *Vector3) float64 {
	return Dist(v[:], w[:])
}

// Dist2 returns the squared distance between v and w.
func (v *Vector3) Dist2(w *Vector3) float64 {
	return Dist2(v[:], w[:])
}

// Equal reports whether v and w coincide within the shared tolerance.
func (v *Vector3) Equal(w *Vector3) bool {
	return v.Dist2(w) < Epsilon2
}

// Zero reports whether v is the zero vector within the shared tolerance.
func (v *Vector3) Zero() bool {
	return v.Mag2() < Epsilon2
}

// Unit reports whether v has unit magnitude within the shared tolerance.
func (v *Vector3) Unit() bool {
	d := v.Mag2() - 1
	return d*d < Epsilon2
}
