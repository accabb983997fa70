package core

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is linear RGB radiance. Channels are non-negative and unbounded above,
// so emitters brighter than 1.0 are representable.
type Color struct {
	R, G, B float32
}

// Black is the zero color
var Black = Color{}

// NewColor creates a new Color
func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns the component-wise product
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale multiplies every channel by factor
func (c Color) Scale(factor float32) Color {
	return Color{c.R * factor, c.G * factor, c.B * factor}
}

// IsBlack reports whether all channels are zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// IsFinite reports whether no channel is NaN or infinite
func (c Color) IsFinite() bool {
	for _, v := range [3]float32{c.R, c.G, c.B} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsNonNegative reports whether every channel is >= 0
func (c Color) IsNonNegative() bool {
	return c.R >= 0 && c.G >= 0 && c.B >= 0
}

// Luminance returns the Rec. 709 luminance of the color
func (c Color) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// RGBA quantizes the color to 8 bits per channel: each channel is clamped to
// [0, 1] and scaled linearly to [0, 255]. No gamma curve is applied.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: 255,
	}
}

func quantize(v float32) uint8 {
	// NaN compares false everywhere and lands on 0
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
