package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/core"
)

// HitEpsilon is the smallest accepted hit distance. Hits closer than this are
// discarded so a ray leaving a surface does not re-hit its own launch point.
const HitEpsilon float32 = 1e-3

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Surface normal at intersection, facing the incoming ray
	T         float32     // Parameter t along the ray
	FrontFace bool        // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Mul(-1)
	}
}

// Kind identifies a shape variant
type Kind int

const (
	KindSphere Kind = iota
	KindBox
	KindCapsule
	KindRoundedBox
	KindHalfSpace
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindCapsule:
		return "capsule"
	case KindRoundedBox:
		return "rounded box"
	case KindHalfSpace:
		return "half-space"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a solid described in its own local frame. It carries no material
// and no placement; an Isometry positions it in the world. Shapes are
// immutable once constructed.
type Shape struct {
	kind        Kind
	radius      float32     // sphere, capsule, rounded box border
	halfExtents core.Vec3   // box, rounded box (inner box)
	a, b        core.Point3 // capsule segment
	normal      core.Vec3   // half-space outward normal
}

// NewSphere creates a sphere of the given radius centered at the local origin
func NewSphere(radius float32) Shape {
	return Shape{kind: KindSphere, radius: radius}
}

// NewBox creates an axis-aligned box centered at the local origin.
// halfExtents is half the size along each axis.
func NewBox(halfExtents core.Vec3) Shape {
	return Shape{kind: KindBox, halfExtents: halfExtents}
}

// NewCapsule creates the set of points within radius of the segment a-b
func NewCapsule(a, b core.Point3, radius float32) Shape {
	return Shape{kind: KindCapsule, a: a, b: b, radius: radius}
}

// NewCapsuleY creates a capsule whose segment runs along local Y from -halfHeight to +halfHeight
func NewCapsuleY(halfHeight, radius float32) Shape {
	return NewCapsule(core.NewVec3(0, -halfHeight, 0), core.NewVec3(0, halfHeight, 0), radius)
}

// NewRoundedBox creates a box with rounded edges: every point within
// borderRadius of the inner box with the given half-extents. Its outer
// half-extents are halfExtents + borderRadius.
func NewRoundedBox(halfExtents core.Vec3, borderRadius float32) Shape {
	return Shape{kind: KindRoundedBox, halfExtents: halfExtents, radius: borderRadius}
}

// NewHalfSpace creates the solid {p : p·normal <= 0} bounded by the plane through
// the local origin. The normal points out of the solid.
func NewHalfSpace(normal core.Vec3) Shape {
	n, _ := core.SafeNormalize(normal)
	return Shape{kind: KindHalfSpace, normal: n}
}

// Kind returns the shape variant
func (s Shape) Kind() Kind {
	return s.kind
}

// Valid reports whether the shape's parameters describe a non-degenerate solid
func (s Shape) Valid() bool {
	switch s.kind {
	case KindSphere:
		return positive(s.radius)
	case KindBox:
		return positive(s.halfExtents[0]) && positive(s.halfExtents[1]) && positive(s.halfExtents[2])
	case KindCapsule:
		return positive(s.radius) && core.IsFinite(s.a) && core.IsFinite(s.b)
	case KindRoundedBox:
		return positive(s.radius) && nonNegative(s.halfExtents[0]) &&
			nonNegative(s.halfExtents[1]) && nonNegative(s.halfExtents[2])
	case KindHalfSpace:
		return s.normal.Len() > 0
	default:
		return false
	}
}

// solid is implemented by each shape variant in its local frame
type solid interface {
	// interval returns the parameter range [t0, t1] over which the infinite
	// line through r lies inside the solid. Either bound may be infinite.
	interval(r core.Ray) (t0, t1 float32, ok bool)
	// outwardNormal returns the unit normal at a surface point
	outwardNormal(p core.Point3) core.Vec3
}

// solid is the single dispatch point over shape variants
func (s Shape) solid() solid {
	switch s.kind {
	case KindSphere:
		return sphere{radius: s.radius}
	case KindBox:
		return box{halfExtents: s.halfExtents}
	case KindCapsule:
		return capsule{a: s.a, b: s.b, radius: s.radius}
	case KindRoundedBox:
		return roundedBox{halfExtents: s.halfExtents, radius: s.radius}
	case KindHalfSpace:
		return halfSpace{normal: s.normal}
	default:
		panic(fmt.Sprintf("geometry: unknown shape kind %v", s.kind))
	}
}

// Hit tests a world-space ray against the shape placed by iso. It returns the
// nearest intersection with tMin < t <= tMax. A ray that starts inside the
// solid reports the exit point as a back-face hit. Degenerate shapes,
// transforms or rays never hit.
func (s Shape) Hit(iso core.Isometry, ray core.Ray, tMin, tMax float32) (HitRecord, bool) {
	if !s.Valid() || !iso.IsFinite() || !core.IsFinite(ray.Origin) {
		return HitRecord{}, false
	}
	if _, ok := core.SafeNormalize(ray.Direction); !ok {
		return HitRecord{}, false
	}

	shape := s.solid()
	local := iso.InverseTransformRay(ray)

	t0, t1, ok := shape.interval(local)
	if !ok {
		return HitRecord{}, false
	}
	t, ok := resolveInterval(t0, t1, tMin, tMax)
	if !ok {
		return HitRecord{}, false
	}

	outward := iso.TransformVector(shape.outwardNormal(local.At(t)))
	if !core.IsFinite(outward) {
		return HitRecord{}, false
	}

	hit := HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hit.SetFaceNormal(ray, outward)
	return hit, true
}

// resolveInterval picks the first finite boundary of [t0, t1] inside (tMin, tMax]
func resolveInterval(t0, t1, tMin, tMax float32) (float32, bool) {
	if inRange(t0, tMin, tMax) {
		return t0, true
	}
	if inRange(t1, tMin, tMax) {
		return t1, true
	}
	return 0, false
}

func inRange(t, tMin, tMax float32) bool {
	return !math32.IsInf(t, 0) && t > tMin && t <= tMax
}

func positive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 0)
}

func nonNegative(v float32) bool {
	return v >= 0 && !math32.IsInf(v, 0)
}
