package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName  string
	samples    int // 0 = scene default
	depth      int // -1 = scene default
	width      int // 0 = scene default
	height     int // 0 = scene default
	workers    int
	chunkSize  int
	seed       uint64
	outputPath string
	sequential bool
	list       bool
	help       bool
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.sceneName, "scene", "default", "Scene to render (see -list)")
	fs.IntVar(&opts.samples, "samples", 0, "Scattered rays at the first bounce (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", -1, "Maximum number of bounces (-1 = scene default)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of worker goroutines (0 = one per CPU)")
	fs.IntVar(&opts.chunkSize, "chunk", 0, "Pixels per render task (0 = one row)")
	fs.Uint64Var(&opts.seed, "seed", renderer.DefaultConfig().Seed, "Random seed")
	fs.StringVar(&opts.outputPath, "output", "", "Output file (.png, .bmp, .tif); default output/<scene>/render_<timestamp>.png")
	fs.BoolVar(&opts.sequential, "sequential", false, "Render on a single goroutine")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	err := fs.Parse(args)
	return opts, fs, err
}

// createPreset loads the named scene and applies command line overrides
func createPreset(opts options) (*scene.Preset, error) {
	preset, err := scene.Lookup(opts.sceneName)
	if err != nil {
		return nil, err
	}
	if opts.samples > 0 {
		preset.SamplesPerBounce = opts.samples
	}
	if opts.depth >= 0 {
		preset.MaxDepth = opts.depth
	}
	if opts.width > 0 {
		preset.Camera.Width = opts.width
	}
	if opts.height > 0 {
		preset.Camera.Height = opts.height
	}
	return preset, nil
}

func outputPath(opts options, now time.Time) string {
	if opts.outputPath != "" {
		return opts.outputPath
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", opts.sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// progressPrinter reports progress every 10%
func progressPrinter(logger core.Logger) func(done, total int) {
	lastDecile := 0
	return func(done, total int) {
		decile := done * 10 / total
		if decile > lastDecile {
			lastDecile = decile
			logger.Printf("  %3d%% (%d/%d chunks)\n", decile*10, done, total)
		}
	}
}

func run(opts options, logger core.Logger) (string, error) {
	preset, err := createPreset(opts)
	if err != nil {
		return "", err
	}

	path := outputPath(opts, time.Now())
	if _, err := output.FormatFromPath(path); err != nil {
		return "", err
	}

	cam, err := camera.New(preset.Camera)
	if err != nil {
		return "", err
	}

	pt := integrator.NewPathTracingIntegrator(preset.Scene, preset.SamplesPerBounce, preset.MaxDepth)
	r, err := renderer.NewRenderer(pt, renderer.Config{
		NumWorkers: opts.workers,
		ChunkSize:  opts.chunkSize,
		Seed:       opts.seed,
	}, logger)
	if err != nil {
		return "", err
	}
	defer r.Close()
	r.SetProgressCallback(progressPrinter(logger))

	logger.Printf("Scene %q: %d objects, %d samples per bounce, depth %d\n",
		opts.sceneName, preset.Scene.Len(), preset.SamplesPerBounce, preset.MaxDepth)

	if opts.sequential {
		_, err = r.RenderSequential(cam)
	} else {
		_, err = r.Render(cam)
	}
	if err != nil {
		return "", err
	}

	if err := output.Save(path, cam.Film().Image()); err != nil {
		return "", err
	}
	return path, nil
}

func printHelp(fs *flag.FlagSet) {
	fmt.Println("Monte-Carlo Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	printScenes()
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s (%d objects)\n", info.ID, info.Description, info.Objects)
	}
}

func main() {
	opts, fs, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if opts.help {
		printHelp(fs)
		return
	}
	if opts.list {
		printScenes()
		return
	}

	fmt.Println("Starting Path Tracer...")
	path, err := run(opts, core.NewDefaultLogger())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("Render saved as %s\n", path)
}
