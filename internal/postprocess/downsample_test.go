package postprocess

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func solid(size int, r, g, b, a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func TestDownsampleSolid(t *testing.T) {
	t.Parallel()

	img := solid(64, 200, 100, 50, 255)
	out := Downsample(img, 16)

	require.Equal(t, 16, out.Bounds().Dx())
	require.Equal(t, 16, out.Bounds().Dy())
	for i := 0; i < len(out.Pix); i += 4 {
		require.InDelta(t, 200, int(out.Pix[i]), 1)
		require.InDelta(t, 100, int(out.Pix[i+1]), 1)
		require.InDelta(t, 50, int(out.Pix[i+2]), 1)
		require.Equal(t, uint8(255), out.Pix[i+3])
	}
}

func TestDownsampleTransparentStaysClean(t *testing.T) {
	t.Parallel()

	// Opaque white square on a fully transparent black background. Without
	// premultiplication the edge pixels would darken.
	img := solid(64, 0, 0, 0, 0)
	for y := 16; y < 48; y++ {
		for x := 16; x < 48; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 255, 255, 255, 255
		}
	}
	out := Downsample(img, 16)

	// Center of the square: still pure white.
	i := out.PixOffset(8, 8)
	require.Equal(t, uint8(255), out.Pix[i])
	require.Equal(t, uint8(255), out.Pix[i+3])
}

func TestResizeNonSquare(t *testing.T) {
	t.Parallel()

	img := solid(32, 10, 220, 10, 255)
	out := Resize(img, 8, 4, draw.NearestNeighbor)

	require.Equal(t, 8, out.Bounds().Dx())
	require.Equal(t, 4, out.Bounds().Dy())
	for i := 0; i < len(out.Pix); i += 4 {
		require.Equal(t, uint8(10), out.Pix[i])
		require.Equal(t, uint8(220), out.Pix[i+1])
		require.Equal(t, uint8(255), out.Pix[i+3])
	}
}

func TestDownsampleNoopWhenSmall(t *testing.T) {
	t.Parallel()

	img := solid(8, 1, 2, 3, 4)
	require.Same(t, img, Downsample(img, 16))
}
