package camera

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Film is a width × height grid of linear colors in row-major order, row 0 at the top
type Film struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFilm creates a black film
func NewFilm(width, height int) *Film {
	return &Film{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color at (x, y)
func (f *Film) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color at (x, y)
func (f *Film) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// Clear resets every pixel to black
func (f *Film) Clear() {
	clear(f.Pixels)
}

// Image quantizes the film to 8 bits per channel
func (f *Film) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, f.At(x, y).RGBA())
		}
	}
	return img
}
