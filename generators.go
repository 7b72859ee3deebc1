package space3

// Zeros returns the zero matrix.
func Zeros() *Matrix3 {
	return &Matrix3{}
}

// Ones returns the matrix with every entry set to 1.
func Ones() *Matrix3 {
	return Zeros().Fill(1)
}

// Eye returns the identity matrix.
func Eye() *Matrix3 {
	return Scalar(1)
}

// Scalar returns s times the identity.
func Scalar(s float64) *Matrix3 {
	return Diag(s, s, s)
}

// Diag returns the diagonal matrix with entries x, y, z.
func Diag(x, y, z float64) *Matrix3 {
	return NewMatrix3(
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	)
}

// Sym returns the symmetric matrix
//
//	| xx  xy  xz |
//	| xy  yy  yz |
//	| xz  yz  zz |
func Sym(xx, yy, zz, xy, xz, yz float64) *Matrix3 {
	return NewMatrix3(
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	)
}

// Asym returns the antisymmetric matrix
//
//	|  0   xy  xz |
//	| -xy   0  yz |
//	| -xz -yz   0 |
func Asym(xy, xz, yz float64) *Matrix3 {
	return NewMatrix3(
		0, xy, xz,
		-xy, 0, yz,
		-xz, -yz, 0,
	)
}

// E returns the canonical basis matrix with a single 1 at row i, column j.
func E(i, j int) *Matrix3 {
	m := Zeros()
	m.SetAt(i, j, 1)
	return m
}

// Tensor returns the outer product u⊗v, defaulting to u⊗u when v is omitted.
func Tensor(u *Vector3, v ...*Vector3) *Matrix3 {
	w := u
	if len(v) > 0 {
		w = v[0]
	}
	m := Zeros()
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			m.e[3*j+i] = u[i] * w[j]
		}
	}
	return m
}

// FromArray builds a matrix from its row-major flat form, the inverse of
// Array.
func FromArray(a [9]float64) *Matrix3 {
	m := Zeros()
	m.SetRowMajor(a)
	return m
}

// FromArray2 builds a matrix from its nested row-by-row form, the inverse of
// Array2.
func FromArray2(a [3][3]float64) *Matrix3 {
	return NewMatrix3(
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	)
}

// FromRows builds a matrix whose rows are x, y, z.
func FromRows(x, y, z Vector3) *Matrix3 {
	m := Zeros()
	m.SetRow(0, x)
	m.SetRow(1, y)
	m.SetRow(2, z)
	return m
}
