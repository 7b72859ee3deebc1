// Package postprocess holds image-space steps applied after rasterization.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a supersampled frame to a targetSize square, returning
// the input unchanged when it already fits.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}
	return Resize(img, targetSize, targetSize, draw.CatmullRom)
}

// Resize scales img to w by h with the given scaler. Filtering happens in
// premultiplied-alpha space; scaling straight NRGBA would bleed the color of
// fully transparent pixels into edges, leaving dark halos.
func Resize(img *image.NRGBA, w, h int, scaler draw.Scaler) *image.NRGBA {
	pm := premultiply(img)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), pm, pm.Bounds(), draw.Src, nil)
	return unpremultiply(dst)
}

func premultiply(src *image.NRGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := src.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			a := float64(src.Pix[i+3]) / 255.0
			dst.Pix[i] = uint8(float64(src.Pix[i])*a + 0.5)
			dst.Pix[i+1] = uint8(float64(src.Pix[i+1])*a + 0.5)
			dst.Pix[i+2] = uint8(float64(src.Pix[i+2])*a + 0.5)
			dst.Pix[i+3] = src.Pix[i+3]
			i += 4
		}
	}
	return dst
}

func unpremultiply(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := src.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if a := float64(src.Pix[i+3]); a > 1 {
				inv := 255.0 / a
				dst.Pix[i] = clamp8(float64(src.Pix[i]) * inv)
				dst.Pix[i+1] = clamp8(float64(src.Pix[i+1]) * inv)
				dst.Pix[i+2] = clamp8(float64(src.Pix[i+2]) * inv)
			}
			dst.Pix[i+3] = src.Pix[i+3]
			i += 4
		}
	}
	return dst
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
