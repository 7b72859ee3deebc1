package raster

import (
	"image"
	"math"
)

// sampleTexture bilinearly filters tex at a mesh UV coordinate, wrapping
// out-of-range coordinates so textures tile. It reads tex.Pix directly and
// does not allocate.
func sampleTexture(tex *image.NRGBA, uv [2]float64) (r, g, b, a uint8) {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()

	fx := wrap(uv[0]) * float64(w-1)
	fy := wrap(uv[1]) * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := (x0+1)%w, (y0+1)%h
	dx, dy := fx-float64(x0), fy-float64(y0)

	p00 := tex.Pix[y0*tex.Stride+x0*4:]
	p10 := tex.Pix[y0*tex.Stride+x1*4:]
	p01 := tex.Pix[y1*tex.Stride+x0*4:]
	p11 := tex.Pix[y1*tex.Stride+x1*4:]

	var out [4]uint8
	for c := 0; c < 4; c++ {
		top := lerp(float64(p00[c]), float64(p10[c]), dx)
		bot := lerp(float64(p01[c]), float64(p11[c]), dx)
		out[c] = uint8(lerp(top, bot, dy) + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// wrap maps a texture coordinate into [0, 1) by repetition.
func wrap(f float64) float64 {
	return f - math.Floor(f)
}
