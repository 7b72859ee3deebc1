package space3

import "math"

// Trig carries the cosine and sine implementations used by the rotation
// generators, a seam for approximate or table-driven trig. Nil fields fall
// back to the math package.
type Trig struct {
	Cos func(float64) float64
	Sin func(float64) float64
}

func pickTrig(trig []Trig) (cos, sin func(float64) float64) {
	cos, sin = math.Cos, math.Sin
	if len(trig) > 0 {
		if trig[0].Cos != nil {
			cos = trig[0].Cos
		}
		if trig[0].Sin != nil {
			sin = trig[0].Sin
		}
	}
	return cos, sin
}

// RotX returns the rotation by theta radians about the X axis.
func RotX(theta float64, trig ...Trig) *Matrix3 {
	cos, sin := pickTrig(trig)
	c, s := cos(theta), sin(theta)
	return NewMatrix3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotY returns the rotation by theta radians about the Y axis.
func RotY(theta float64, trig ...Trig) *Matrix3 {
	cos, sin := pickTrig(trig)
	c, s := cos(theta), sin(theta)
	return NewMatrix3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotZ returns the rotation by theta radians about the Z axis.
func RotZ(theta float64, trig ...Trig) *Matrix3 {
	cos, sin := pickTrig(trig)
	c, s := cos(theta), sin(theta)
	return NewMatrix3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// Rot returns the rotation by theta radians about an arbitrary axis, built
// from the Rodrigues form c·I + s·[u]× + (1−c)·u⊗u. The axis is normalized
// first; a zero axis propagates NaN entries.
func Rot(axis *Vector3, theta float64, trig ...Trig) *Matrix3 {
	cos, sin := pickTrig(trig)
	c, s := cos(theta), sin(theta)
	u := axis.NormC()
	m := Scalar(c)
	m.Add(Asym(-u[2], u[1], -u[0]).Mul(s))
	m.Add(Tensor(u).Mul(1 - c))
	return m
}
