package raster

import (
	"image"
	"math"

	"github.com/passabilities/space3"
)

// rasterizeTriangle draws one flat-shaded triangle with z-buffering and
// optional bilinear texture mapping. This is the hot path; the pixel loop
// does not allocate.
func rasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float64,
	tri Tri,
	tex *image.NRGBA,
	defR, defG, defB, defA uint8,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range tri.V {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[tri.V[0]], py[tri.V[0]], pz[tri.V[0]]
	x1, y1, z1 := px[tri.V[1]], py[tri.V[1]], pz[tri.V[1]]
	x2, y2, z2 := px[tri.V[2]], py[tri.V[2]], pz[tri.V[2]]

	hasUV := tex != nil
	for _, i := range tri.T {
		if i < 0 || i >= len(uvs) {
			hasUV = false
			break
		}
	}
	var t0, t1, t2 [2]float64
	if hasUV {
		t0, t1, t2 = uvs[tri.T[0]], uvs[tri.T[1]], uvs[tri.T[2]]
	}

	// Face normal for flat shading.
	e1 := space3.Vector3{x1 - x0, y1 - y0, z1 - z0}
	e2 := space3.Vector3{x2 - x0, y2 - y0, z2 - z0}
	normal := e1.Cross(&e2)
	if normal.Zero() {
		return
	}
	shade := lc.Shade(*normal.Norm())

	// Clipped bounding box.
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := defR, defG, defB, defA
			if hasUV {
				uv := [2]float64{
					w0*t0[0] + w1*t1[0] + w2*t2[0],
					w0*t0[1] + w1*t1[1] + w2*t2[1],
				}
				cr, cg, cb, ca = sampleTexture(tex, uv)
			}
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// sRGB decode, shade, tone map, re-encode.
			sr := acesTonemap(srgbToLinear[cr] * shade * lc.Exposure)
			sg := acesTonemap(srgbToLinear[cg] * shade * lc.Exposure)
			sb := acesTonemap(srgbToLinear[cb] * shade * lc.Exposure)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(math.Pow(sr, lc.InvGamma) * 255)
			fb.Color[pxIdx+1] = clamp255(math.Pow(sg, lc.InvGamma) * 255)
			fb.Color[pxIdx+2] = clamp255(math.Pow(sb, lc.InvGamma) * 255)
			fb.Color[pxIdx+3] = ca
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
