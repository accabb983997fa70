package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a free direction in 3D space
type Vec3 = mgl32.Vec3

// Point3 is a position in 3D space. It shares its representation with Vec3;
// the distinction is documentary (points translate under an Isometry, vectors don't).
type Point3 = mgl32.Vec3

// Vec2 holds a pair of sample values
type Vec2 = mgl32.Vec2

// Canonical axes
var (
	UnitX = NewVec3(1, 0, 0)
	UnitY = NewVec3(0, 1, 0)
	UnitZ = NewVec3(0, 0, 1)
)

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// IsFinite reports whether every component of v is neither NaN nor infinite
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// SafeNormalize returns v scaled to unit length, or false when v has no
// usable direction (zero length or non-finite components)
func SafeNormalize(v Vec3) (Vec3, bool) {
	if !IsFinite(v) {
		return Vec3{}, false
	}
	length := v.Len()
	if length == 0 || math32.IsInf(length, 0) {
		return Vec3{}, false
	}
	return v.Mul(1 / length), true
}

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray. The direction is used as given; callers pass unit vectors.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
