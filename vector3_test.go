package space3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/passabilities/space3"
)

func TestVectorArithmetic(t *testing.T) {
	t.Parallel()

	v := space3.NewVector3(1, 2, 3)
	w := space3.NewVector3(4, 5, 6)

	sum := v.AddC(w)
	require.Equal(t, space3.Vector3{5, 7, 9}, *sum)
	require.Equal(t, space3.Vector3{1, 2, 3}, *v)

	v.Add(w)
	require.Equal(t, *sum, *v)
	v.Sub(w)
	require.Equal(t, space3.Vector3{1, 2, 3}, *v)

	require.Equal(t, space3.Vector3{-1, -2, -3}, *v.NegC())
	require.Equal(t, space3.Vector3{2, 4, 6}, *v.MulC(2))
	require.Equal(t, space3.Vector3{0.5, 1, 1.5}, *v.DivC(2))
	require.Equal(t, space3.Vector3{7, 7, 7}, *v.Clone().Fill(7))
	require.Equal(t, space3.Vector3{9, 9, 9}, *v.FillC(9))
	require.Equal(t, space3.Vector3{1, 2, 3}, *v)
}

func TestVectorLerp(t *testing.T) {
	t.Parallel()

	a := space3.NewVector3(0, 0, 0)
	b := space3.NewVector3(2, 4, 8)
	require.Equal(t, space3.Vector3{1, 2, 4}, *a.LerpC(b, 0.5))
	require.Equal(t, space3.Vector3{0, 0, 0}, *a)
}

func TestVectorDotCross(t *testing.T) {
	t.Parallel()

	x := space3.NewVector3(1, 0, 0)
	y := space3.NewVector3(0, 1, 0)

	require.Equal(t, 0.0, x.Dot(y))
	require.Equal(t, space3.Vector3{0, 0, 1}, *x.CrossC(y))
	require.Equal(t, space3.Vector3{0, 0, -1}, *y.CrossC(x))
	require.Equal(t, space3.Vector3{1, 0, 0}, *x) // CrossC left x alone

	// Cross of parallel vectors vanishes.
	require.True(t, x.CrossC(x.MulC(3)).Zero())
}

func TestVectorMagDistNorm(t *testing.T) {
	t.Parallel()

	v := space3.NewVector3(3, 4, 0)
	require.Equal(t, 25.0, v.Mag2())
	require.Equal(t, 5.0, v.Mag())

	require.Equal(t, 25.0, v.Dist2(space3.NewVector3(0, 0, 0)))

	u := v.NormC()
	require.True(t, u.Unit())
	require.True(t, u.Equal(space3.NewVector3(0.6, 0.8, 0)))
	require.False(t, v.Unit())
}

func TestVectorEqualZero(t *testing.T) {
	t.Parallel()

	v := space3.NewVector3(1, 2, 3)
	w := v.Clone()
	w[2] += space3.Epsilon / 10
	require.True(t, v.Equal(w))
	require.False(t, v.Equal(v.AddC(space3.NewVector3(1, 0, 0))))

	require.True(t, space3.NewVector3(0, 0, 0).Zero())
	require.False(t, v.Zero())
}

func TestVectorDivByZero(t *testing.T) {
	t.Parallel()

	v := space3.NewVector3(1, -1, 0).Div(0)
	require.True(t, math.IsInf(v[0], 1))
	require.True(t, math.IsInf(v[1], -1))
	require.True(t, math.IsNaN(v[2]))
}

func TestVectorCloneIndependence(t *testing.T) {
	t.Parallel()

	v := space3.NewVector3(1, 2, 3)
	c := v.Clone()
	c[0] = 99
	require.Equal(t, 1.0, v[0])
}
