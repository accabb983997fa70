package renderer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Config contains the render driver settings
type Config struct {
	NumWorkers int    // Worker goroutines (0 = one per CPU)
	ChunkSize  int    // Pixels per task (0 = one image row)
	Seed       uint64 // Base seed; each pixel samples from stream (Seed, pixel index)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		ChunkSize:  0,
		Seed:       42,
	}
}

// Validate checks the configuration for values that cannot be rendered
func (c Config) Validate() error {
	if c.NumWorkers < 0 {
		return fmt.Errorf("invalid worker count %d", c.NumWorkers)
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("invalid chunk size %d", c.ChunkSize)
	}
	return nil
}

// Renderer fills a camera's film by evaluating the integrator once per pixel
type Renderer struct {
	integrator integrator.Integrator
	config     Config
	logger     core.Logger

	pool *WorkerPool

	renderMu   sync.Mutex // one render at a time
	progressMu sync.Mutex
	progress   func(done, total int)
}

// NewRenderer creates a renderer for the integrator and starts its worker
// pool. Call Close to stop the workers.
func NewRenderer(integ integrator.Integrator, config Config, logger core.Logger) (*Renderer, error) {
	if integ == nil {
		return nil, errors.New("renderer requires an integrator")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{
		integrator: integ,
		config:     config,
		logger:     logger,
		pool:       NewWorkerPool(config.NumWorkers),
	}, nil
}

// Close stops the worker pool. The renderer must not be used afterwards.
func (r *Renderer) Close() {
	r.renderMu.Lock()
	defer r.renderMu.Unlock()
	r.pool.Stop()
}

// SetProgressCallback registers fn to be called after each finished chunk.
// Calls are serialized, so fn need not be safe for concurrent use.
func (r *Renderer) SetProgressCallback(fn func(done, total int)) {
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.progress = fn
}

// Render fills the camera's film in parallel. The film is split into
// disjoint chunks up front and each chunk is one task on the worker pool,
// so pixels are written without locks. The result does not depend on
// worker count, chunk size or scheduling. Concurrent calls run one after
// another.
func (r *Renderer) Render(cam *camera.Camera) (RenderStats, error) {
	return r.render(cam, r.pool.NumWorkers(), func(chunks []camera.Chunk, done func()) error {
		for _, chunk := range chunks {
			r.pool.Submit(func() error {
				r.renderChunk(chunk)
				done()
				return nil
			})
		}
		return r.pool.Wait()
	})
}

// RenderSequential fills the camera's film on the calling goroutine
func (r *Renderer) RenderSequential(cam *camera.Camera) (RenderStats, error) {
	return r.render(cam, 1, func(chunks []camera.Chunk, done func()) error {
		for _, chunk := range chunks {
			r.renderChunk(chunk)
			done()
		}
		return nil
	})
}

func (r *Renderer) render(cam *camera.Camera, workers int, run func([]camera.Chunk, func()) error) (RenderStats, error) {
	if cam == nil {
		return RenderStats{}, errors.New("render requires a camera")
	}

	r.renderMu.Lock()
	defer r.renderMu.Unlock()

	chunkSize := r.config.ChunkSize
	if chunkSize == 0 {
		chunkSize = cam.Width()
	}
	chunks := cam.Chunks(chunkSize)

	stats := RenderStats{
		Width:       cam.Width(),
		Height:      cam.Height(),
		TotalPixels: cam.Width() * cam.Height(),
		Chunks:      len(chunks),
		Workers:     workers,
	}
	if len(chunks) == 0 {
		return stats, nil
	}

	r.logger.Printf("Rendering %dx%d in %d chunks on %d workers\n", stats.Width, stats.Height, stats.Chunks, workers)
	start := time.Now()

	completed := 0
	done := func() {
		r.progressMu.Lock()
		defer r.progressMu.Unlock()
		completed++
		if r.progress != nil {
			r.progress(completed, len(chunks))
		}
	}
	if err := run(chunks, done); err != nil {
		return stats, fmt.Errorf("render failed: %w", err)
	}

	stats.Elapsed = time.Since(start)
	stats.AverageLuminance = averageLuminance(cam.Film().Pixels)
	r.logger.Printf("Render complete: %s\n", stats)
	return stats, nil
}

// renderChunk evaluates every pixel of the chunk. The sampler is reseeded
// per pixel so a pixel's value depends only on the seed and its index.
func (r *Renderer) renderChunk(chunk camera.Chunk) {
	sampler := core.NewStreamSampler(r.config.Seed, 0)
	for pr, pixel := range chunk.Rays() {
		sampler.Reseed(r.config.Seed, uint64(pr.Index))
		*pixel = r.integrator.RayColor(pr.Ray, sampler)
	}
}
