// Package frames fans frame rendering out over a worker pool and writes each
// finished frame as a lossless WebP file.
package frames

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds shared settings for one turntable run.
type Config struct {
	OutputDir string
	Prefix    string
	Workers   int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame int
	Path  string
	Error string
}

// RenderFunc produces the finished image for one frame index.
type RenderFunc func(frame int) (*image.NRGBA, error)

// Run renders total frames concurrently and writes them to the output dir.
// Results are indexed by frame number.
func Run(cfg Config, total int, render RenderFunc) []Result {
	results := make([]Result, total)
	var processed atomic.Int64

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		for i := range results {
			results[i] = Result{Frame: i, Error: err.Error()}
		}
		return results
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx, render)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, idx int, render RenderFunc) Result {
	img, err := render(idx)
	if err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}

	path := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%03d.webp", cfg.Prefix, idx))
	f, err := os.Create(path)
	if err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: idx, Error: fmt.Sprintf("frames: encode %s: %v", path, err)}
	}

	return Result{Frame: idx, Path: path}
}
