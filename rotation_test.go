package space3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/passabilities/space3"
)

func requireRotation(t *testing.T, m *space3.Matrix3) {
	t.Helper()
	requireMatEqual(t, space3.Eye(), m.ProdC(m.TransC()))
	require.InDelta(t, 1.0, m.Det(), 1e-9)
}

func TestRotAxes(t *testing.T) {
	t.Parallel()

	for _, theta := range []float64{0, 0.3, math.Pi / 2, 2.1, -0.7} {
		requireRotation(t, space3.RotX(theta))
		requireRotation(t, space3.RotY(theta))
		requireRotation(t, space3.RotZ(theta))
	}

	// Quarter turn about Z sends ex to ey.
	v := space3.NewVector3(1, 0, 0)
	space3.RotZ(math.Pi / 2).Apply(v)
	require.True(t, v.Equal(space3.NewVector3(0, 1, 0)))

	// Quarter turn about X sends ey to ez.
	w := space3.NewVector3(0, 1, 0)
	space3.RotX(math.Pi / 2).Apply(w)
	require.True(t, w.Equal(space3.NewVector3(0, 0, 1)))
}

func TestRotMatchesAxisForms(t *testing.T) {
	t.Parallel()

	theta := 0.83
	requireMatEqual(t, space3.RotX(theta), space3.Rot(space3.NewVector3(1, 0, 0), theta))
	requireMatEqual(t, space3.RotY(theta), space3.Rot(space3.NewVector3(0, 1, 0), theta))
	requireMatEqual(t, space3.RotZ(theta), space3.Rot(space3.NewVector3(0, 0, 1), theta))

	// The axis is normalized, so scaling it changes nothing.
	requireMatEqual(t,
		space3.Rot(space3.NewVector3(1, 1, 1), theta),
		space3.Rot(space3.NewVector3(10, 10, 10), theta),
	)
}

func TestRotGeneral(t *testing.T) {
	t.Parallel()

	axis := space3.NewVector3(1, -2, 0.5)
	m := space3.Rot(axis, 1.2)
	requireRotation(t, m)

	// The axis itself is fixed by the rotation.
	u := axis.NormC()
	require.True(t, m.ApplyC(u).Equal(u))

	// Full turn is the identity, opposite angles cancel.
	requireMatEqual(t, space3.Eye(), space3.Rot(axis, 2*math.Pi))
	requireMatEqual(t, space3.Eye(), space3.Rot(axis, 0.9).Prod(space3.Rot(axis, -0.9)))
}

func TestTrigSeam(t *testing.T) {
	t.Parallel()

	cosCalls, sinCalls := 0, 0
	trig := space3.Trig{
		Cos: func(x float64) float64 { cosCalls++; return math.Cos(x) },
		Sin: func(x float64) float64 { sinCalls++; return math.Sin(x) },
	}

	requireMatEqual(t, space3.RotZ(0.4), space3.RotZ(0.4, trig))
	require.Equal(t, 1, cosCalls)
	require.Equal(t, 1, sinCalls)

	// A degraded trig pair flows straight into the formulas.
	crude := space3.Trig{
		Cos: func(float64) float64 { return 1 },
		Sin: func(float64) float64 { return 0 },
	}
	requireMatEqual(t, space3.Eye(), space3.RotX(12.34, crude))

	// Nil fields fall back to the math package.
	requireMatEqual(t, space3.RotY(0.4), space3.RotY(0.4, space3.Trig{}))
}
