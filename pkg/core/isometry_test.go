package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestFaceTowards_Axes(t *testing.T) {
	eye := NewVec3(0, 0, 0)
	target := NewVec3(1, 0, 0)

	iso, ok := FaceTowards(eye, target, UnitZ)
	if !ok {
		t.Fatal("Expected a valid frame")
	}

	// Z looks at the target, X = up × Z, Y = Z × X
	tests := []struct {
		name     string
		local    Vec3
		expected Vec3
	}{
		{"forward", UnitZ, NewVec3(1, 0, 0)},
		{"x axis", UnitX, NewVec3(0, 1, 0)},
		{"y axis", UnitY, NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := iso.TransformVector(tt.local)
			if !vecClose(got, tt.expected, 1e-5) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFaceTowards_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		eye    Point3
		target Point3
		up     Vec3
	}{
		{"eye equals target", NewVec3(1, 1, 1), NewVec3(1, 1, 1), UnitZ},
		{"up parallel to view", NewVec3(0, 0, 0), NewVec3(0, 0, 5), UnitZ},
		{"zero up", NewVec3(0, 0, 0), NewVec3(1, 0, 0), Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := FaceTowards(tt.eye, tt.target, tt.up); ok {
				t.Error("Expected degenerate frame to be rejected")
			}
		})
	}
}

func TestIsometry_InverseRoundTrip(t *testing.T) {
	iso := Rotation(math32.Pi/3, NewVec3(1, 1, 0)).Mul(Translation(2, -1, 4))
	p := NewVec3(0.5, -3, 7)

	world := iso.TransformPoint(p)
	back := iso.InverseTransformPoint(world)
	if !vecClose(back, p, 1e-4) {
		t.Errorf("Expected round trip to %v, got %v", p, back)
	}

	viaInverse := iso.Inverse().TransformPoint(world)
	if !vecClose(viaInverse, p, 1e-4) {
		t.Errorf("Expected Inverse() to undo the transform, got %v", viaInverse)
	}
}

func TestIsometry_PreservesDistances(t *testing.T) {
	iso := NewIsometry(Rotation(1.1, NewVec3(0.2, 1, -0.4)).Rotation, NewVec3(5, 5, 5))
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 0, 2)

	before := a.Sub(b).Len()
	after := iso.TransformPoint(a).Sub(iso.TransformPoint(b)).Len()
	if math32.Abs(before-after) > 1e-4 {
		t.Errorf("Expected distance %f to be preserved, got %f", before, after)
	}
}

func TestIsometry_InverseTransformRay(t *testing.T) {
	iso := Translation(0, 0, 10)
	ray := NewRay(NewVec3(0, 0, 0), UnitZ)

	local := iso.InverseTransformRay(ray)
	if !vecClose(local.Origin, NewVec3(0, 0, -10), 1e-6) {
		t.Errorf("Expected local origin (0,0,-10), got %v", local.Origin)
	}
	if !vecClose(local.Direction, UnitZ, 1e-6) {
		t.Errorf("Expected direction to be unchanged, got %v", local.Direction)
	}
}

func TestIsometry_IsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Error("Expected identity to be finite")
	}
	bad := Translation(math32.NaN(), 0, 0)
	if bad.IsFinite() {
		t.Error("Expected NaN translation to be rejected")
	}
}
