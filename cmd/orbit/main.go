// Command orbit renders a turntable of a spinning cube: every frame's
// orientation is a space3 rotation, rasterized on the CPU and written as a
// lossless WebP sequence.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/passabilities/space3"
	"github.com/passabilities/space3/internal/config"
	"github.com/passabilities/space3/internal/frames"
	"github.com/passabilities/space3/internal/postprocess"
	"github.com/passabilities/space3/internal/raster"
	"github.com/passabilities/space3/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	frameCount := flag.Int("frames", 0, "Number of turntable frames (default: 36)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	texPath := flag.String("texture", "", "TGA/PNG/JPEG skin for the cube (default: checkerboard)")
	tilt := flag.Float64("tilt", 0, "Camera tilt in degrees (default: -20)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	overrides := config.Flags{
		OutputDir: *outputDir,
		Texture:   *texPath,
		Frames:    *frameCount,
		Size:      *size,
		Workers:   *workers,
	}
	// Only a tilt flag actually passed overrides the file, so -tilt 0 works.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "tilt" {
			overrides.TiltDeg = tilt
		}
	})
	cfg.Resolve(overrides)

	var tex *image.NRGBA
	if cfg.Texture != "" {
		var err error
		tex, err = texture.Load(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
	} else {
		tex = texture.Checker(256, 8,
			color.NRGBA{R: 235, G: 235, B: 240, A: 255},
			color.NRGBA{R: 40, G: 90, B: 180, A: 255},
		)
	}

	mesh := raster.Cube(1)
	axis := space3.NewVector3(cfg.Axis[0], cfg.Axis[1], cfg.Axis[2])
	camera := space3.RotX(space3.Deg2Rad(*cfg.TiltDeg))

	fmt.Printf("Rendering %d frames at %dx%d (%d workers)\n",
		cfg.Frames, cfg.Size, cfg.Size, cfg.Workers)
	start := time.Now()

	results := frames.Run(frames.Config{
		OutputDir: cfg.OutputDir,
		Prefix:    "orbit",
		Workers:   cfg.Workers,
	}, cfg.Frames, func(frame int) (*image.NRGBA, error) {
		theta := 2 * math.Pi * float64(frame) / float64(cfg.Frames)
		view := camera.ProdC(space3.Rot(axis, theta))
		img := raster.Render(mesh, view, tex, cfg.Size, cfg.Supersample)
		return postprocess.Downsample(img, cfg.Size), nil
	})

	ok := 0
	for _, r := range results {
		if r.Error == "" {
			ok++
		} else {
			fmt.Fprintf(os.Stderr, "frame %d: %s\n", r.Frame, r.Error)
		}
	}
	fmt.Printf("Done: %d/%d frames in %.1fs -> %s\n",
		ok, len(results), time.Since(start).Seconds(), cfg.OutputDir)

	if ok < len(results) {
		os.Exit(1)
	}
}
