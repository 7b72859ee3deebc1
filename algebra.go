package space3

import "math"

// Epsilon is the component-level tolerance shared by every fuzzy comparison
// in the package. Epsilon2 is its square, compared against squared distances
// so that no square root is taken on the hot path.
const (
	Epsilon  = 1e-5
	Epsilon2 = Epsilon * Epsilon
)

// Mag2 returns the squared Euclidean magnitude of a flat component list.
func Mag2(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v * v
	}
	return s
}

// Mag returns the Euclidean (Frobenius, for matrices) magnitude.
func Mag(a []float64) float64 {
	return math.Sqrt(Mag2(a))
}

// Dot returns the componentwise dot product. The shorter operand bounds the sum.
func Dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var s float64
	for i := 0; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// Dist2 returns the squared Euclidean distance between two component lists.
func Dist2(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var s float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// Dist returns the Euclidean distance between two component lists.
func Dist(a, b []float64) float64 {
	return math.Sqrt(Dist2(a, b))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
