package frames

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWritesFrames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rendered := make([]bool, 4)

	results := Run(Config{OutputDir: dir, Prefix: "orbit", Workers: 2}, 4,
		func(frame int) (*image.NRGBA, error) {
			rendered[frame] = true
			return image.NewNRGBA(image.Rect(0, 0, 8, 8)), nil
		})

	require.Len(t, results, 4)
	for i, r := range results {
		require.Equal(t, i, r.Frame)
		require.Empty(t, r.Error)
		require.Equal(t, filepath.Join(dir, fmt.Sprintf("orbit_%03d.webp", i)), r.Path)
		require.True(t, rendered[i])

		info, err := os.Stat(r.Path)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}
}

func TestRunReportsRenderErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	boom := errors.New("bad frame")

	results := Run(Config{OutputDir: dir, Prefix: "orbit", Workers: 1}, 2,
		func(frame int) (*image.NRGBA, error) {
			if frame == 1 {
				return nil, boom
			}
			return image.NewNRGBA(image.Rect(0, 0, 4, 4)), nil
		})

	require.Empty(t, results[0].Error)
	require.Equal(t, "bad frame", results[1].Error)
	require.Empty(t, results[1].Path)
}
