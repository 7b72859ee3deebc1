package space3

import "math"

// Quat is a rotation quaternion stored as (x, y, z, w).
type Quat [4]float64

// QuatEuler builds the quaternion for Euler angles in radians, applied in
// X, Y, Z order: the resulting rotation is Rz·Ry·Rx.
func QuatEuler(rx, ry, rz float64) Quat {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return Quat{
		sx*cy*cz - cx*sy*sz,
		cx*sy*cz + sx*cy*sz,
		cx*cy*sz - sx*sy*cz,
		cx*cy*cz + sx*sy*sz,
	}
}

// Unit reports whether q has unit magnitude within the shared tolerance.
func (q Quat) Unit() bool {
	d := Mag2(q[:]) - 1
	return d*d < Epsilon2
}

// Matrix3 returns the rotation matrix for q. The result is orthonormal only
// when q is a unit quaternion.
func (q Quat) Matrix3() *Matrix3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return NewMatrix3(
		1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy),
	)
}

// RotEuler returns the rotation matrix for Euler angles applied in X, Y, Z
// order, composed through the quaternion form.
func RotEuler(rx, ry, rz float64) *Matrix3 {
	return QuatEuler(rx, ry, rz).Matrix3()
}
