package renderer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// createTestScene creates a lit diffuse sphere resting on a floor
func createTestScene() *scene.Scene {
	return scene.NewBuilder(core.NewColor(0.05, 0.05, 0.1)).
		AddObject(geometry.NewHalfSpace(core.UnitZ), core.Translation(0, 0, -1), material.NewDiffuse(core.NewColor(0.6, 0.6, 0.6))).
		AddObject(geometry.NewSphere(1), core.Identity(), material.NewDiffuse(core.NewColor(0.8, 0.3, 0.2))).
		AddObject(geometry.NewSphere(2), core.Translation(3, 3, 6), material.NewEmissive(core.NewColor(8, 8, 8))).
		MustBuild()
}

func createTestCamera(t *testing.T, width, height int) *camera.Camera {
	t.Helper()
	cam, err := camera.New(camera.Config{
		Eye:    core.NewVec3(6, -6, 3),
		Target: core.NewVec3(0, 0, 0),
		Up:     core.UnitZ,
		FOV:    math32.Pi / 4,
		Width:  width,
		Height: height,
	})
	if err != nil {
		t.Fatalf("camera.New failed: %v", err)
	}
	return cam
}

func createTestRenderer(t *testing.T, config Config) *Renderer {
	t.Helper()
	r, err := NewRenderer(integrator.NewPathTracingIntegrator(createTestScene(), 4, 3), config, core.NopLogger{})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestRender_ParallelMatchesSequential(t *testing.T) {
	const width, height = 24, 16

	sequential := createTestCamera(t, width, height)
	if _, err := createTestRenderer(t, Config{Seed: 7}).RenderSequential(sequential); err != nil {
		t.Fatalf("RenderSequential failed: %v", err)
	}

	configs := []struct {
		name   string
		config Config
	}{
		{"default chunks", Config{Seed: 7}},
		{"one worker", Config{NumWorkers: 1, ChunkSize: 50, Seed: 7}},
		{"many small chunks", Config{NumWorkers: 8, ChunkSize: 7, Seed: 7}},
		{"single chunk", Config{NumWorkers: 3, ChunkSize: width * height, Seed: 7}},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			cam := createTestCamera(t, width, height)
			if _, err := createTestRenderer(t, tc.config).Render(cam); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			for i, got := range cam.Film().Pixels {
				if want := sequential.Film().Pixels[i]; got != want {
					t.Fatalf("Pixel %d differs: sequential %v, parallel %v", i, want, got)
				}
			}
		})
	}
}

func TestRender_SeedChangesOutput(t *testing.T) {
	first := createTestCamera(t, 8, 8)
	second := createTestCamera(t, 8, 8)
	if _, err := createTestRenderer(t, Config{Seed: 1}).Render(first); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, err := createTestRenderer(t, Config{Seed: 2}).Render(second); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	differs := false
	for i := range first.Film().Pixels {
		if first.Film().Pixels[i] != second.Film().Pixels[i] {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("Expected different seeds to produce different noise")
	}
}

func TestRender_RepeatedRendersAreIdentical(t *testing.T) {
	r := createTestRenderer(t, Config{NumWorkers: 4, ChunkSize: 5, Seed: 3})
	first := createTestCamera(t, 10, 6)
	second := createTestCamera(t, 10, 6)

	if _, err := r.Render(first); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, err := r.Render(second); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i := range first.Film().Pixels {
		if first.Film().Pixels[i] != second.Film().Pixels[i] {
			t.Fatalf("Pixel %d differs between renders", i)
		}
	}
}

func TestRender_EmptySceneIsBackground(t *testing.T) {
	background := core.NewColor(0.2, 0.4, 0.6)
	sc := scene.NewBuilder(background).MustBuild()
	r, err := NewRenderer(integrator.NewPathTracingIntegrator(sc, 8, 5), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	defer r.Close()

	cam := createTestCamera(t, 5, 4)
	stats, err := r.Render(cam)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i, c := range cam.Film().Pixels {
		if c != background {
			t.Fatalf("Pixel %d: expected background %v, got %v", i, background, c)
		}
	}
	if math32.Abs(float32(stats.AverageLuminance)-background.Luminance()) > 1e-5 {
		t.Errorf("Expected average luminance %f, got %f", background.Luminance(), stats.AverageLuminance)
	}
}

func TestRender_Stats(t *testing.T) {
	r := createTestRenderer(t, Config{NumWorkers: 2, ChunkSize: 10, Seed: 1})
	cam := createTestCamera(t, 9, 5)

	stats, err := r.Render(cam)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalPixels != 45 {
		t.Errorf("Expected 45 pixels, got %d", stats.TotalPixels)
	}
	if stats.Chunks != 5 {
		t.Errorf("Expected 5 chunks, got %d", stats.Chunks)
	}
	if stats.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", stats.Workers)
	}
	if stats.Elapsed <= 0 {
		t.Errorf("Expected positive elapsed time, got %v", stats.Elapsed)
	}
}

func TestRender_ZeroResolution(t *testing.T) {
	r := createTestRenderer(t, DefaultConfig())
	cam := createTestCamera(t, 0, 0)

	stats, err := r.Render(cam)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalPixels != 0 || stats.Chunks != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
}

func TestRender_ProgressCallback(t *testing.T) {
	r := createTestRenderer(t, Config{NumWorkers: 4, ChunkSize: 4, Seed: 1})
	cam := createTestCamera(t, 6, 6)

	var calls atomic.Int32
	last := 0
	r.SetProgressCallback(func(done, total int) {
		calls.Add(1)
		if total != 9 {
			t.Errorf("Expected total of 9 chunks, got %d", total)
		}
		if done != last+1 {
			t.Errorf("Expected progress %d, got %d", last+1, done)
		}
		last = done
	})

	if _, err := r.Render(cam); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if calls.Load() != 9 {
		t.Errorf("Expected 9 progress calls, got %d", calls.Load())
	}
}

func TestRender_NilCamera(t *testing.T) {
	r := createTestRenderer(t, DefaultConfig())
	if _, err := r.Render(nil); err == nil {
		t.Error("Expected an error for a nil camera")
	}
}

func TestNewRenderer_Validation(t *testing.T) {
	pt := integrator.NewPathTracingIntegrator(createTestScene(), 1, 1)
	tests := []struct {
		name    string
		integ   integrator.Integrator
		config  Config
		wantErr bool
	}{
		{"default", pt, DefaultConfig(), false},
		{"nil integrator", nil, DefaultConfig(), true},
		{"negative workers", pt, Config{NumWorkers: -1}, true},
		{"negative chunk size", pt, Config{ChunkSize: -8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer(tt.integ, tt.config, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if r != nil {
				r.Close()
			}
		})
	}
}

func BenchmarkRender(b *testing.B) {
	preset := scene.NewDefaultScene()
	cfg := preset.Camera
	cfg.Width, cfg.Height = 64, 64

	for _, samples := range []int{4, 16} {
		for _, depth := range []int{3, 6} {
			pt := integrator.NewPathTracingIntegrator(preset.Scene, samples, depth)
			r, err := NewRenderer(pt, DefaultConfig(), nil)
			if err != nil {
				b.Fatal(err)
			}
			defer r.Close()
			b.Run(fmt.Sprintf("samples=%d/depth=%d", samples, depth), func(b *testing.B) {
				for range b.N {
					cam, err := camera.New(cfg)
					if err != nil {
						b.Fatal(err)
					}
					if _, err := r.Render(cam); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func TestRender_ConcurrentCallsMatchSequential(t *testing.T) {
	const width, height = 12, 8

	want := createTestCamera(t, width, height)
	if _, err := createTestRenderer(t, Config{Seed: 5}).RenderSequential(want); err != nil {
		t.Fatalf("RenderSequential failed: %v", err)
	}

	r := createTestRenderer(t, Config{NumWorkers: 3, ChunkSize: 7, Seed: 5})
	var calls atomic.Int32
	r.SetProgressCallback(func(done, total int) { calls.Add(1) })

	cams := make([]*camera.Camera, 4)
	errs := make([]error, len(cams))
	var wg sync.WaitGroup
	for i := range cams {
		cams[i] = createTestCamera(t, width, height)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = r.Render(cams[i])
		}()
	}
	wg.Wait()

	for i, cam := range cams {
		if errs[i] != nil {
			t.Fatalf("Render %d failed: %v", i, errs[i])
		}
		for p, c := range cam.Film().Pixels {
			if c != want.Film().Pixels[p] {
				t.Fatalf("Render %d pixel %d: expected %v, got %v", i, p, want.Film().Pixels[p], c)
			}
		}
	}

	chunks := len(want.Chunks(7))
	if got := int(calls.Load()); got != len(cams)*chunks {
		t.Errorf("Expected %d progress calls, got %d", len(cams)*chunks, got)
	}
}

func TestRenderer_CloseStopsPool(t *testing.T) {
	r, err := NewRenderer(integrator.NewPathTracingIntegrator(createTestScene(), 1, 1), Config{NumWorkers: 2}, nil)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if _, err := r.Render(createTestCamera(t, 4, 4)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	r.Close()
	r.Close()
}
