package raytrace

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lumenray/raytrace/camera"
	"github.com/lumenray/raytrace/color"
)

// RowNotifier is called after each image row finishes rendering, with
// the row index and the number of rows remaining across the whole
// image. Returning false cancels the render: in-flight tiles finish
// their current row and stop, per spec.md §5's "a per-row notifier
// callback that may request cancellation."
type RowNotifier func(row, rowsRemaining int) bool

// Render drives Evaluator.Trace over every pixel of cam's image, split
// into contiguous row tiles processed by one goroutine per tile
// (spec.md §5). With a nil notifier the whole image renders
// unconditionally. The returned Stats is the merge of every tile's
// own counters.
func Render(eval *Evaluator, cam *camera.Camera, notifier RowNotifier) Stats {
	tiles := rowTiles(cam.HeightPx, runtime.GOMAXPROCS(0))

	var cancelled atomic.Bool
	var wg sync.WaitGroup
	agg := &statsAggregate{}

	for _, tile := range tiles {
		wg.Add(1)
		go func(tile rowTile) {
			defer wg.Done()
			local := Stats{}
			for y := tile.start; y < tile.end; y++ {
				if cancelled.Load() {
					break
				}
				renderRow(eval, cam, y, tile.start, &local)
				if notifier != nil {
					remaining := cam.HeightPx - y - 1
					if !notifier(y, remaining) {
						cancelled.Store(true)
					}
				}
			}
			agg.merge(local)
		}(tile)
	}
	wg.Wait()

	return agg.total
}

// rowTile is a contiguous [start, end) span of image rows assigned to
// one goroutine.
type rowTile struct {
	start, end int
}

// rowTiles splits height rows into at most workers contiguous tiles,
// matching the teacher's habit of sizing its worker pool off
// runtime.GOMAXPROCS rather than a hardcoded constant.
func rowTiles(height, workers int) []rowTile {
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}
	base := height / workers
	extra := height % workers
	tiles := make([]rowTile, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		if size == 0 {
			continue
		}
		tiles = append(tiles, rowTile{start: start, end: start + size})
		start += size
	}
	return tiles
}

// renderRow fills one row of cam.Image. When adaptive antialiasing is
// disabled (Config.MaskThreshold <= 0), every pixel is shot with
// Config.Samples jittered rays directly, per spec.md §4.10 ("When the
// mask threshold is disabled, the renderer shoots number_of_samples
// rays per pixel directly"). When it is enabled, the row gets an
// initial single sample, and the row above it (y-1) gets its Sobel
// contrast pass and any needed resampling — but only when y-1 falls
// inside this goroutine's own tile. A tile's own last row never gets
// that second pass (it would need the next tile's first row, owned by
// a different goroutine, for its 3x3 neighborhood), so it keeps its
// single-sample value; every tile boundary costs one row of adaptive
// antialiasing coverage in exchange for each pixel being written by
// exactly one goroutine.
func renderRow(eval *Evaluator, cam *camera.Camera, y, tileStart int, stats *Stats) {
	cfg := eval.Scene.Config
	for x := 0; x < cam.WidthPx; x++ {
		var c color.Color
		if cfg.MaskThreshold <= 0 {
			c = supersample(eval, cam, x, y, cfg.Samples, stats)
		} else {
			u, v := cam.ImagePoint(x, y, 0.5, 0.5)
			ray := cam.Cast(u, v)
			c = eval.Trace(ray, &eval.Scene.Medium, cfg.RecursionDepth, 1.0, stats)
		}
		_ = cam.SetPixel(x, y, c)
	}

	if cfg.MaskThreshold <= 0 || y == 0 || y-1 < tileStart {
		return
	}
	resolveRow(eval, cam, y-1, stats)
}

// resolveRow runs the Sobel contrast pass over row y and re-traces any
// pixel whose contrast meets Config.MaskThreshold with Config.Samples
// jittered rays. The caller is responsible for ensuring row y's own
// tile owns it exclusively.
func resolveRow(eval *Evaluator, cam *camera.Camera, y int, stats *Stats) {
	cfg := eval.Scene.Config
	for x := 1; x < cam.WidthPx-1; x++ {
		contrast := sobelContrast(cam, x, y)
		_ = cam.MarkResolved(x, y, contrast)
		if contrast < cfg.MaskThreshold {
			continue
		}
		stats.addSupersampled(1)
		c := supersample(eval, cam, x, y, cfg.Samples, stats)
		_ = cam.SetPixel(x, y, c)
	}
}

// sobelContrast estimates the local luminance gradient magnitude
// around (x, y) using the standard 3x3 Sobel operator, normalized to
// roughly [0, 1] so it can be compared directly against
// Config.MaskThreshold.
func sobelContrast(cam *camera.Camera, x, y int) float64 {
	lum := func(dx, dy int) float64 {
		c, err := cam.Image.At(x+dx, y+dy)
		if err != nil {
			c = cam.Image.AtClamped(x+dx, y+dy)
		}
		return c.Luminance()
	}
	gx := -lum(-1, -1) - 2*lum(-1, 0) - lum(-1, 1) +
		lum(1, -1) + 2*lum(1, 0) + lum(1, 1)
	gy := -lum(-1, -1) - 2*lum(0, -1) - lum(1, -1) +
		lum(-1, 1) + 2*lum(0, 1) + lum(1, 1)
	mag := (gx*gx + gy*gy)
	return clamp01(mag)
}

// supersample re-traces pixel (x, y) with n jittered rays, averaging
// their linear-light results, per spec.md §4.10's adaptive
// antialiasing resampling step.
func supersample(eval *Evaluator, cam *camera.Camera, x, y, n int, stats *Stats) color.Color {
	if n < 1 {
		n = 1
	}
	sum := color.Black
	for i := 0; i < n; i++ {
		jx, jy := stratifiedJitter(i, n)
		u, v := cam.ImagePoint(x, y, jx, jy)
		ray := cam.Cast(u, v)
		cfg := eval.Scene.Config
		sum = sum.Add(eval.Trace(ray, &eval.Scene.Medium, cfg.RecursionDepth, 1.0, stats))
	}
	return sum.Scale(1.0 / float64(n))
}

// stratifiedJitter places sample i of n on a deterministic grid inside
// the pixel, grounded on lights.Area's stratified sampling pattern
// rather than an unseeded math/rand source, so a render is fully
// reproducible.
func stratifiedJitter(i, n int) (x, y float64) {
	cols := 1
	for cols*cols < n {
		cols++
	}
	row := i / cols
	col := i % cols
	step := 1.0 / float64(cols)
	return (float64(col) + 0.5) * step, (float64(row) + 0.5) * step
}
