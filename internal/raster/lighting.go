package raster

import (
	"math"

	"github.com/passabilities/space3"
)

// LightConfig holds precomputed lighting parameters for flat shading.
type LightConfig struct {
	LightDir space3.Vector3
	RimDir   space3.Vector3
	ViewDir  space3.Vector3
	HalfMain space3.Vector3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Hemi     float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns a key light from the upper right, a cool rim
// light, and a front view direction.
func DefaultLightConfig() LightConfig {
	lightDir := *space3.NewVector3(180, 260, 140).Norm()
	rimDir := *space3.NewVector3(-160, 130, -210).Norm()
	viewDir := *space3.NewVector3(0, -110, -400).Norm()
	halfMain := *lightDir.SubC(&viewDir).Norm()

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		ViewDir:  viewDir,
		HalfMain: halfMain,
		Ambient:  0.55,
		Hemi:     0.50,
		Direct:   1.50,
		Rim:      0.60,
		SpecInt:  0.45,
		SpecPow:  12.0,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
	}
}

// Shade returns the combined lighting scalar for a unit face normal.
// Lambertian terms take the absolute dot product so faces are double-sided.
func (lc *LightConfig) Shade(n space3.Vector3) float64 {
	ndlMain := math.Abs(n.Dot(&lc.LightDir))
	ndlRim := math.Abs(n.Dot(&lc.RimDir))

	hemi := (1.0-math.Abs(n[1]))*0.5 + 0.5

	ndh := n.Dot(&lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemi*lc.Hemi + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table.
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// acesTonemap applies ACES filmic tone mapping to a linear value.
func acesTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
