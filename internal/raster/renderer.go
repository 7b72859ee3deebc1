package raster

import (
	"image"
	"math"

	"github.com/passabilities/space3"
)

// Render draws the mesh under the given view orientation into a square NRGBA
// image of size*supersample pixels, projected orthographically along Z. The
// mesh is scaled and centered to fit the frame with a small margin.
func Render(mesh *Mesh, view *space3.Matrix3, tex *image.NRGBA, size, supersample int) *image.NRGBA {
	renderSize := size * supersample
	if len(mesh.Verts) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	tv := make([]space3.Vector3, len(mesh.Verts))
	for i := range mesh.Verts {
		tv[i] = *view.ApplyC(&mesh.Verts[i])
	}

	lo := space3.Vector3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := space3.Vector3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := range tv {
		for k := 0; k < 3; k++ {
			if tv[i][k] < lo[k] {
				lo[k] = tv[i][k]
			}
			if tv[i][k] > hi[k] {
				hi[k] = tv[i][k]
			}
		}
	}
	center := lo.AddC(&hi).Mul(0.5)
	span := math.Max(hi[0]-lo[0], hi[1]-lo[1])
	if span < 0.001 {
		span = 0.001
	}

	margin := renderSize / 16
	scale := float64(renderSize-2*margin) / span

	// Screen mapping as one affine map: p = scale·v + offset puts the
	// bounding-box center at the image center.
	fit := space3.Scalar(scale)
	offset := space3.NewVector3(
		float64(renderSize)/2-scale*center[0],
		float64(renderSize)/2-scale*center[1],
		0,
	)

	px := make([]float64, len(tv))
	py := make([]float64, len(tv))
	pz := make([]float64, len(tv))
	for i := range tv {
		p := space3.Affine(fit, offset, &tv[i])
		px[i], py[i], pz[i] = p[0], p[1], p[2]
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	var defR, defG, defB, defA uint8 = 160, 160, 170, 255
	if tex != nil {
		defR, defG, defB, defA = averageColor(tex)
	}

	for _, tri := range mesh.Tris {
		rasterizeTriangle(fb, px, py, pz, mesh.UVs, tri, tex, defR, defG, defB, defA, &lc)
	}

	return fb.ToNRGBA()
}

// averageColor is the fallback flat color for texels outside the UV set.
func averageColor(tex *image.NRGBA) (uint8, uint8, uint8, uint8) {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 160, 160, 170, 255
	}

	var sumR, sumG, sumB float64
	stride := tex.Stride
	for y := 0; y < h; y++ {
		off := y * stride
		for x := 0; x < w; x++ {
			i := off + x*4
			sumR += float64(tex.Pix[i])
			sumG += float64(tex.Pix[i+1])
			sumB += float64(tex.Pix[i+2])
		}
	}
	n := float64(w * h)
	return uint8(sumR/n + 0.5), uint8(sumG/n + 0.5), uint8(sumB/n + 0.5), 255
}
