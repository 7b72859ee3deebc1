package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/require"
)

func TestLoadTGARoundTrip(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := src.PixOffset(x, y)
			src.Pix[i] = uint8(x * 60)
			src.Pix[i+1] = uint8(y * 60)
			src.Pix[i+2] = 128
			src.Pix[i+3] = 255
		}
	}

	path := filepath.Join(t.TempDir(), "skin.tga")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, tga.Encode(f, src))
	require.NoError(t, f.Close())

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), got.Bounds())
	require.Equal(t, src.Pix, got.Pix)
}

func TestLoadPNG(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "skin.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint8(255), got.Pix[got.PixOffset(0, 0)])
	require.Equal(t, uint8(255), got.Pix[got.PixOffset(1, 1)+2])
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.tga"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.tga")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestChecker(t *testing.T) {
	t.Parallel()

	a := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	b := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	img := Checker(8, 4, a, b)

	require.Equal(t, uint8(255), img.Pix[img.PixOffset(0, 0)])   // first cell
	require.Equal(t, uint8(0), img.Pix[img.PixOffset(2, 0)])     // next cell
	require.Equal(t, uint8(0), img.Pix[img.PixOffset(0, 2)])     // below
	require.Equal(t, uint8(255), img.Pix[img.PixOffset(2, 2)+3]) // alpha everywhere
}
