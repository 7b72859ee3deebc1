package space3

// Matrix3 is a dense 3×3 double-precision matrix. The nine entries live in a
// fixed flat buffer in column-major order: e[3*j+i] holds the entry at row i,
// column j. Constructors take components in row-major order, the way a matrix
// is written on paper; only the internal layout is column-major.
//
// Every operation that writes the receiver has a copying counterpart suffixed
// C that leaves the receiver alone and returns a fresh instance. Mutating
// operations return the receiver so calls can be chained.
type Matrix3 struct {
	e [9]float64
}

// NewMatrix3 builds the matrix
//
//	| xx  xy  xz |
//	| yx  yy  yz |
//	| zx  zy  zz |
func NewMatrix3(xx, xy, xz, yx, yy, yz, zx, zy, zz float64) *Matrix3 {
	return &Matrix3{e: [9]float64{
		xx, yx, zx,
		xy, yy, zy,
		xz, yz, zz,
	}}
}

// Clone returns an independent copy of m.
func (m *Matrix3) Clone() *Matrix3 {
	c := *m
	return &c
}

// Copy overwrites m with the entries of n and returns m.
func (m *Matrix3) Copy(n *Matrix3) *Matrix3 {
	m.e = n.e
	return m
}

// At returns the entry at row i, column j (both in 0..2).
func (m *Matrix3) At(i, j int) float64 {
	return m.e[3*j+i]
}

// SetAt writes the entry at row i, column j.
func (m *Matrix3) SetAt(i, j int, v float64) {
	m.e[3*j+i] = v
}

// Row returns row i as a vector.
func (m *Matrix3) Row(i int) Vector3 {
	return Vector3{m.e[i], m.e[3+i], m.e[6+i]}
}

// SetRow writes v into row i.
func (m *Matrix3) SetRow(i int, v Vector3) {
	m.e[i], m.e[3+i], m.e[6+i] = v[0], v[1], v[2]
}

// Col returns column j as a vector.
func (m *Matrix3) Col(j int) Vector3 {
	return Vector3{m.e[3*j], m.e[3*j+1], m.e[3*j+2]}
}

// SetCol writes v into column j.
func (m *Matrix3) SetCol(j int, v Vector3) {
	m.e[3*j], m.e[3*j+1], m.e[3*j+2] = v[0], v[1], v[2]
}

// X returns the first row.
func (m *Matrix3) X() Vector3 { return m.Row(0) }

// Y returns the second row.
func (m *Matrix3) Y() Vector3 { return m.Row(1) }

// Z returns the third row.
func (m *Matrix3) Z() Vector3 { return m.Row(2) }

// SetX writes the first row.
func (m *Matrix3) SetX(v Vector3) { m.SetRow(0, v) }

// SetY writes the second row.
func (m *Matrix3) SetY(v Vector3) { m.SetRow(1, v) }

// SetZ writes the third row.
func (m *Matrix3) SetZ(v Vector3) { m.SetRow(2, v) }

// Diag returns the main diagonal as a vector.
func (m *Matrix3) Diag() Vector3 {
	return Vector3{m.e[0], m.e[4], m.e[8]}
}

// SetDiag writes v onto the main diagonal.
func (m *Matrix3) SetDiag(v Vector3) {
	m.e[0], m.e[4], m.e[8] = v[0], v[1], v[2]
}

// RowMajor returns the nine entries in row-major reading order.
func (m *Matrix3) RowMajor() [9]float64 {
	return [9]float64{
		m.e[0], m.e[3], m.e[6],
		m.e[1], m.e[4], m.e[7],
		m.e[2], m.e[5], m.e[8],
	}
}

// SetRowMajor loads the nine entries from row-major reading order.
func (m *Matrix3) SetRowMajor(a [9]float64) {
	m.e = [9]float64{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}

// ColMajor returns the raw column-major storage.
func (m *Matrix3) ColMajor() [9]float64 {
	return m.e
}

// SetColMajor loads the storage directly in column-major order.
func (m *Matrix3) SetColMajor(a [9]float64) {
	m.e = a
}

// Array returns the row-major flat form, the canonical serialization order.
// FromArray(m.Array()) reproduces m.
func (m *Matrix3) Array() [9]float64 {
	return m.RowMajor()
}

// Array2 returns the nested row-by-row form.
func (m *Matrix3) Array2() [3][3]float64 {
	return [3][3]float64{
		{m.e[0], m.e[3], m.e[6]},
		{m.e[1], m.e[4], m.e[7]},
		{m.e[2], m.e[5], m.e[8]},
	}
}

// Add accumulates n into m entrywise.
func (m *Matrix3) Add(n *Matrix3) *Matrix3 {
	for k := range m.e {
		m.e[k] += n.e[k]
	}
	return m
}

// AddC returns m + n without touching m.
func (m *Matrix3) AddC(n *Matrix3) *Matrix3 {
	return m.Clone().Add(n)
}

// Sub subtracts n from m entrywise.
func (m *Matrix3) Sub(n *Matrix3) *Matrix3 {
	for k := range m.e {
		m.e[k] -= n.e[k]
	}
	return m
}

// SubC returns m - n without touching m.
func (m *Matrix3) SubC(n *Matrix3) *Matrix3 {
	return m.Clone().Sub(n)
}

// Neg negates every entry of m.
func (m *Matrix3) Neg() *Matrix3 {
	for k := range m.e {
		m.e[k] = -m.e[k]
	}
	return m
}

// NegC returns -m without touching m.
func (m *Matrix3) NegC() *Matrix3 {
	return m.Clone().Neg()
}

// Mul scales every entry of m by s.
func (m *Matrix3) Mul(s float64) *Matrix3 {
	for k := range m.e {
		m.e[k] *= s
	}
	return m
}

// MulC returns s·m without touching m.
func (m *Matrix3) MulC(s float64) *Matrix3 {
	return m.Clone().Mul(s)
}

// Div scales every entry of m by 1/s. Division by zero follows IEEE-754:
// entries become ±Inf or NaN, no error is raised.
func (m *Matrix3) Div(s float64) *Matrix3 {
	for k := range m.e {
		m.e[k] /= s
	}
	return m
}

// DivC returns m/s without touching m.
func (m *Matrix3) DivC(s float64) *Matrix3 {
	return m.Clone().Div(s)
}

// Lerp moves every entry of m toward the matching entry of n by fraction t.
func (m *Matrix3) Lerp(n *Matrix3, t float64) *Matrix3 {
	for k := range m.e {
		m.e[k] += (n.e[k] - m.e[k]) * t
	}
	return m
}

// LerpC returns the interpolated matrix without touching m.
func (m *Matrix3) LerpC(n *Matrix3, t float64) *Matrix3 {
	return m.Clone().Lerp(n, t)
}

// Fill sets every entry of m to s.
func (m *Matrix3) Fill(s float64) *Matrix3 {
	for k := range m.e {
		m.e[k] = s
	}
	return m
}

// FillC returns a matrix with every entry set to s, without touching m.
func (m *Matrix3) FillC(s float64) *Matrix3 {
	return m.Clone().Fill(s)
}

// Norm scales m to unit Frobenius magnitude. A zero matrix divides to NaN.
func (m *Matrix3) Norm() *Matrix3 {
	return m.Div(m.Mag())
}

// NormC returns the normalized matrix without touching m.
func (m *Matrix3) NormC() *Matrix3 {
	return m.Clone().Norm()
}

// Det returns the determinant, by cofactor expansion along the first column.
func (m *Matrix3) Det() float64 {
	e := &m.e
	return e[0]*(e[4]*e[8]-e[7]*e[5]) -
		e[1]*(e[3]*e[8]-e[6]*e[5]) +
		e[2]*(e[3]*e[7]-e[6]*e[4])
}

// Trace returns the sum of the diagonal entries.
func (m *Matrix3) Trace() float64 {
	return m.e[0] + m.e[4] + m.e[8]
}

// Trans transposes m in place.
func (m *Matrix3) Trans() *Matrix3 {
	e := &m.e
	e[1], e[3] = e[3], e[1]
	e[2], e[6] = e[6], e[2]
	e[5], e[7] = e[7], e[5]
	return m
}

// TransC returns the transpose without touching m.
func (m *Matrix3) TransC() *Matrix3 {
	return m.Clone().Trans()
}

// Prod right-multiplies: m = m × n. Both operands are snapshotted before any
// entry is written, so m.Prod(m) squares m correctly.
func (m *Matrix3) Prod(n *Matrix3) *Matrix3 {
	a, b := m.e, n.e
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			m.e[3*j+i] = a[i]*b[3*j] + a[3+i]*b[3*j+1] + a[6+i]*b[3*j+2]
		}
	}
	return m
}

// ProdC returns m × n without touching m.
func (m *Matrix3) ProdC(n *Matrix3) *Matrix3 {
	return m.Clone().Prod(n)
}

// adjugate returns the nine cofactor expressions of the classical adjoint,
// already laid out in column-major order.
func (m *Matrix3) adjugate() [9]float64 {
	e := &m.e
	return [9]float64{
		e[4]*e[8] - e[7]*e[5],
		e[7]*e[2] - e[1]*e[8],
		e[1]*e[5] - e[4]*e[2],
		e[6]*e[5] - e[3]*e[8],
		e[0]*e[8] - e[6]*e[2],
		e[3]*e[2] - e[0]*e[5],
		e[3]*e[7] - e[6]*e[4],
		e[6]*e[1] - e[0]*e[7],
		e[0]*e[4] - e[3]*e[1],
	}
}

// Adj replaces m with its classical adjoint (transposed cofactor matrix).
func (m *Matrix3) Adj() *Matrix3 {
	m.e = m.adjugate()
	return m
}

// AdjC returns the adjoint without touching m.
func (m *Matrix3) AdjC() *Matrix3 {
	return m.Clone().Adj()
}

// Inv inverts m in place via the adjugate-over-determinant formula. When the
// determinant is exactly zero it returns ErrSingular and leaves m untouched.
// The zero test is exact rather than fuzzy, so a numerically near-singular
// matrix still inverts, with the precision the entries allow.
func (m *Matrix3) Inv() error {
	d := m.Det()
	if d == 0 {
		return ErrSingular
	}
	adj := m.adjugate()
	for k := range adj {
		m.e[k] = adj[k] / d
	}
	return nil
}

// InvC returns the inverse without touching m, or ErrSingular.
func (m *Matrix3) InvC() (*Matrix3, error) {
	c := m.Clone()
	if err := c.Inv(); err != nil {
		return nil, err
	}
	return c, nil
}

// Pow raises m to an integer power in place. A negative exponent inverts
// first (failing with ErrSingular on a singular matrix, m untouched); a zero
// exponent yields the identity for any m. Positive exponents use binary
// exponentiation, O(log n) multiplications.
func (m *Matrix3) Pow(exp int) error {
	n := uint64(exp)
	if exp < 0 {
		if err := m.Inv(); err != nil {
			return err
		}
		// Unsigned negation stays exact even at the minimum int.
		n = -n
	}
	m.Copy(matPow(m, n))
	return nil
}

// PowC returns m raised to an integer power without touching m.
func (m *Matrix3) PowC(exp int) (*Matrix3, error) {
	c := m.Clone()
	if err := c.Pow(exp); err != nil {
		return nil, err
	}
	return c, nil
}

// matPow squares its way down the exponent: halve, square the partial result,
// and multiply by the base once more when the remaining exponent is odd.
func matPow(base *Matrix3, exp uint64) *Matrix3 {
	if exp == 0 {
		return Eye()
	}
	half := matPow(base, exp/2)
	half.Prod(half)
	if exp%2 == 1 {
		half.Prod(base)
	}
	return half
}

// Dot returns the entrywise dot product of m and n over all nine entries.
func (m *Matrix3) Dot(n *Matrix3) float64 {
	return Dot(m.e[:], n.e[:])
}

// Mag returns the Frobenius magnitude of m.
func (m *Matrix3) Mag() float64 {
	return Mag(m.e[:])
}

// Mag2 returns the squared Frobenius magnitude of m.
func (m *Matrix3) Mag2() float64 {
	return Mag2(m.e[:])
}

// Dist returns the Euclidean distance between m and n as 9-entry vectors.
func (m *Matrix3) Dist(n *Matrix3) float64 {
	return Dist(m.e[:], n.e[:])
}

// Dist2 returns the squared distance between m and n.
func (m *Matrix3) Dist2(n *Matrix3) float64 {
	return Dist2(m.e[:], n.e[:])
}

// Equal reports whether m and n coincide within the shared tolerance.
// Like any tolerance-based relation it is symmetric but not exactly
// transitive.
func (m *Matrix3) Equal(n *Matrix3) bool {
	return m.Dist2(n) < Epsilon2
}

// Zero reports whether m is the zero matrix within the shared tolerance.
func (m *Matrix3) Zero() bool {
	return m.Mag2() < Epsilon2
}

// Apply multiplies v by m and writes the result back into v: v = m·v.
// Mutating the argument is the point; use ApplyC to keep v intact.
func (m *Matrix3) Apply(v *Vector3) *Vector3 {
	e := &m.e
	x := e[0]*v[0] + e[3]*v[1] + e[6]*v[2]
	y := e[1]*v[0] + e[4]*v[1] + e[7]*v[2]
	z := e[2]*v[0] + e[5]*v[1] + e[8]*v[2]
	v[0], v[1], v[2] = x, y, z
	return v
}

// ApplyC returns m·v without touching v.
func (m *Matrix3) ApplyC(v *Vector3) *Vector3 {
	return m.Apply(v.Clone())
}

// Affine applies the affine map v = m·v + t in place and returns v, composing
// a linear map with a translation without a 4×4 homogeneous detour.
func Affine(m *Matrix3, t, v *Vector3) *Vector3 {
	return m.Apply(v).Add(t)
}
