package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height    int
	TotalPixels      int           // Total number of pixels rendered
	Chunks           int           // Number of independent tasks the film was split into
	Workers          int           // Goroutines that rendered the chunks
	Elapsed          time.Duration // Wall time from first to last pixel
	AverageLuminance float64       // Mean Rec. 709 luminance of the linear film
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}

// String formats the stats for a log line
func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d pixels in %d chunks on %d workers, %v (%.0f px/s), avg luminance %.4f",
		s.Width, s.Height, s.TotalPixels, s.Chunks, s.Workers, s.Elapsed.Round(time.Millisecond),
		s.PixelsPerSecond(), s.AverageLuminance)
}

// averageLuminance returns the mean luminance of linear film colors
func averageLuminance(pixels []core.Color) float64 {
	if len(pixels) == 0 {
		return 0
	}
	var total float64
	for _, c := range pixels {
		total += float64(c.Luminance())
	}
	return total / float64(len(pixels))
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of a quantized image, in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(count)
}
