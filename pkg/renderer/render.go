package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/log"
)

// RowSink receives the finished image one row at a time, top row first
type RowSink interface {
	Begin(width, height int) error
	WriteRow(row int, pixels []core.Vec3) error
	End() error
}

// RenderConfig controls how a render is executed
type RenderConfig struct {
	Workers int   // Number of parallel workers (0 = use CPU count)
	Seed    int64 // Base seed; row r draws from a generator seeded with Seed+r
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Workers: 0,
		Seed:    42,
	}
}

// Validate checks the configuration
func (c RenderConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidRenderConfig, c.Workers)
	}
	return nil
}

// Renderer drives a camera over a world and streams ordered rows to a sink
type Renderer struct {
	camera    *Camera
	raytracer *Raytracer
	config    RenderConfig
	logger    log.Logger
}

// NewRenderer creates a renderer. The world is borrowed and must not change while rendering.
func NewRenderer(camera *Camera, world geometry.Hittable, background Background, config RenderConfig, logger log.Logger) (*Renderer, error) {
	if camera == nil {
		return nil, fmt.Errorf("%w: camera is required", ErrInvalidRenderConfig)
	}
	if world == nil {
		return nil, fmt.Errorf("%w: world is required", ErrInvalidRenderConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Discard()
	}

	return &Renderer{
		camera:    camera,
		raytracer: NewRaytracer(world, background),
		config:    config,
		logger:    logger,
	}, nil
}

// RenderPixel averages SamplesPerPixel radiance estimates for pixel (i, j)
func (r *Renderer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	config := r.camera.Config()
	colorAccum := core.Vec3{}
	for sample := 0; sample < config.SamplesPerPixel; sample++ {
		ray := r.camera.GetRay(i, j, sampler)
		colorAccum = colorAccum.Add(r.raytracer.RayColor(ray, config.MaxDepth, sampler))
	}
	return colorAccum.Multiply(1.0 / float64(config.SamplesPerPixel))
}

// renderRow renders every pixel of one row
func (r *Renderer) renderRow(row int, sampler core.Sampler) ([]core.Vec3, int) {
	width := r.camera.ImageWidth()
	pixels := make([]core.Vec3, width)
	for i := 0; i < width; i++ {
		pixels[i] = r.RenderPixel(i, row, sampler)
	}
	return pixels, width * r.camera.Config().SamplesPerPixel
}

// Render renders the full image and writes it to sink in row order.
// Rows are rendered in parallel; rows finishing early wait until all rows above them are written.
func (r *Renderer) Render(ctx context.Context, sink RowSink) (RenderStats, error) {
	width, height := r.camera.ImageWidth(), r.camera.ImageHeight()
	config := r.camera.Config()

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: config.SamplesPerPixel,
		MaxDepth:        config.MaxDepth,
		Seed:            r.config.Seed,
	}

	if err := sink.Begin(width, height); err != nil {
		return stats, fmt.Errorf("failed to begin image: %w", err)
	}

	pool := NewWorkerPool(r.renderRow, r.config.Workers, height)
	r.logger.Infof("Rendering %dx%d at %d spp, depth %d, using %d workers (seed %d)",
		width, height, config.SamplesPerPixel, config.MaxDepth, pool.GetNumWorkers(), r.config.Seed)

	startTime := time.Now()
	pool.Start(ctx)
	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{Row: row, Seed: r.config.Seed + int64(row)})
	}

	pending := make(map[int]RowResult)
	nextRow := 0
	for received := 0; received < height; received++ {
		result, ok := pool.GetResult()
		if !ok {
			pool.Stop()
			return stats, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			pool.Stop()
			return stats, result.Error
		}
		pending[result.Row] = result

		// Flush every row that is now contiguous with what has been written
		for {
			ready, found := pending[nextRow]
			if !found {
				break
			}
			delete(pending, nextRow)

			if err := sink.WriteRow(nextRow, ready.Pixels); err != nil {
				pool.Stop()
				return stats, fmt.Errorf("failed to write row %d: %w", nextRow, err)
			}
			stats.addRow(ready)
			nextRow++
			r.logger.Noticef("Scanline %d of %d [%.2f%%]", nextRow, height, 100*float64(nextRow)/float64(height))
		}
	}
	pool.Stop()
	stats.RenderTime = time.Since(startTime)

	if err := sink.End(); err != nil {
		return stats, fmt.Errorf("failed to finish image: %w", err)
	}

	r.logger.Infof("Render completed in %v (%.1f samples/pixel)", stats.RenderTime, stats.AverageSamples())
	return stats, nil
}
