package core

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
)

func TestColor_Arithmetic(t *testing.T) {
	a := NewColor(0.5, 1, 2)
	b := NewColor(2, 0.5, 0.25)

	if got := a.Add(b); got != NewColor(2.5, 1.5, 2.25) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Mul(b); got != NewColor(1, 0.5, 0.5) {
		t.Errorf("Mul: got %v", got)
	}
	if got := a.Scale(2); got != NewColor(1, 2, 4) {
		t.Errorf("Scale: got %v", got)
	}
}

func TestColor_RGBA(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected color.RGBA
	}{
		{"black", Black, color.RGBA{0, 0, 0, 255}},
		{"white", NewColor(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"bright emitter clamps", NewColor(25, 30, 1.5), color.RGBA{255, 255, 255, 255}},
		{"negative clamps", NewColor(-1, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"half is linear", NewColor(0.5, 0.5, 0.5), color.RGBA{127, 127, 127, 255}},
		{"NaN is black", NewColor(math32.NaN(), 0, 0), color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.RGBA(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_Validity(t *testing.T) {
	if !NewColor(30, 24, 15).IsFinite() || !NewColor(30, 24, 15).IsNonNegative() {
		t.Error("Expected bright emitter color to be valid")
	}
	if NewColor(math32.Inf(1), 0, 0).IsFinite() {
		t.Error("Expected infinite color to be rejected")
	}
	if NewColor(0, -0.1, 0).IsNonNegative() {
		t.Error("Expected negative channel to be rejected")
	}
}
